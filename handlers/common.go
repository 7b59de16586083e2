package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"blogfolio/config"
	"blogfolio/database"
	"blogfolio/middleware"
	"blogfolio/models"
	"blogfolio/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
)

// GoogleClaims is the subset of a verified Google ID token the auth flow
// consumes.
type GoogleClaims struct {
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier validates a Google ID token against the configured client ID.
// It is a field on Handler so tests can substitute a stub.
type GoogleVerifier func(ctx context.Context, credential, audience string) (*GoogleClaims, error)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	Cfg          *config.Config
	DB           *database.DB
	Storage      *storage.Client
	VerifyGoogle GoogleVerifier
}

func NewHandler(cfg *config.Config, db *database.DB, store *storage.Client) *Handler {
	return &Handler{
		Cfg:          cfg,
		DB:           db,
		Storage:      store,
		VerifyGoogle: verifyGoogleIDToken,
	}
}

// Default avatar generation, same pools the user schema seeds from.
var (
	profileImgNames = []string{
		"Garfield", "Tinkerbell", "Annie", "Loki", "Cleo", "Angel", "Bob",
		"Mia", "Coco", "Gracie", "Bear", "Bella", "Abby", "Harley", "Cali",
		"Leo", "Luna", "Jack", "Felix", "Kiki",
	}
	profileImgCollections = []string{"notionists-neutral", "adventurer-neutral", "fun-emoji"}
)

func defaultProfileImg() string {
	collection := profileImgCollections[randomIndex(len(profileImgCollections))]
	seed := profileImgNames[randomIndex(len(profileImgNames))]
	return fmt.Sprintf("https://api.dicebear.com/6.x/%s/svg?seed=%s", collection, seed)
}

func randomIndex(n int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(i.Int64())
}

// randomSuffix returns n random hex characters.
func randomSuffix(n int) string {
	b := make([]byte, (n+1)/2)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())[:n]
	}
	return hex.EncodeToString(b)[:n]
}

// usernameFromEmail derives the base username from the email local-part.
func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

// generateUsername derives a unique username from the email local-part,
// appending a 5-character random suffix when the plain form is taken.
func (h *Handler) generateUsername(ctx context.Context, email string) (string, error) {
	username := usernameFromEmail(email)

	count, err := h.DB.Users.CountDocuments(ctx, bson.M{"personal_info.username": username})
	if err != nil {
		return "", err
	}
	if count > 0 {
		username += randomSuffix(5)
	}
	return username, nil
}

// issueAccessToken signs the user's document id into a bearer token.
func (h *Handler) issueAccessToken(userID string) (string, error) {
	claims := &middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Cfg.JWT.Secret))
}

// formatUserPayload is the shared response shape of signup, signin and
// google-auth.
func (h *Handler) formatUserPayload(user *models.User) (gin.H, error) {
	accessToken, err := h.issueAccessToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return gin.H{
		"access_token": accessToken,
		"profile_img":  user.PersonalInfo.ProfileImg,
		"username":     user.PersonalInfo.Username,
		"fullname":     user.PersonalInfo.Fullname,
	}, nil
}
