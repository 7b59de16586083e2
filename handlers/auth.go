package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"blogfolio/models"
	"blogfolio/validation"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// bcryptCost matches the hash parameters existing user documents were
// created with.
const bcryptCost = 10

type SignupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleAuthRequest struct {
	AccessToken string `json:"access_token"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid request body"})
		return
	}

	// Validate before touching the store
	if !validation.ValidFullname(req.Fullname) {
		c.JSON(http.StatusForbidden, gin.H{"error": "FullName must be greater than 3 letters"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Enter Email"})
		return
	}
	if !validation.ValidEmail(req.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email invalid"})
		return
	}
	if !validation.ValidPassword(req.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Password must content 6-20 characters, 1 numeric, 1 lowercase and 1 uppercase letter"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	username, err := h.generateUsername(ctx, req.Email)
	if err != nil {
		log.Printf("[Signup] username lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	user := models.User{
		ID: primitive.NewObjectID(),
		PersonalInfo: models.PersonalInfo{
			Fullname:   req.Fullname,
			Email:      strings.ToLower(req.Email),
			Password:   string(hashed),
			Username:   username,
			ProfileImg: defaultProfileImg(),
		},
		Education:  []models.Education{},
		Experience: []models.Experience{},
		Skills:     []string{},
		Blogs:      []primitive.ObjectID{},
		JoinedAt:   time.Now().Unix(),
	}

	if _, err := h.DB.Users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email Exists already"})
			return
		}
		log.Printf("[Signup] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	payload, err := h.formatUserPayload(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid request body"})
		return
	}

	if !validation.ValidEmail(req.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email invalid"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := h.DB.Users.FindOne(ctx, bson.M{"personal_info.email": strings.ToLower(req.Email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email not found"})
		return
	}
	if err != nil {
		log.Printf("[Signin] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if user.GoogleAuth {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account was created using google. Try logging in with google"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PersonalInfo.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Incorrect password"})
		return
	}

	payload, err := h.formatUserPayload(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No access token provided"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims, err := h.VerifyGoogle(ctx, req.AccessToken, h.Cfg.Google.ClientID)
	if err != nil {
		log.Printf("[GoogleAuth] token verification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try with another account"})
		return
	}

	picture := upgradeGooglePicture(claims.Picture)

	var user models.User
	err = h.DB.Users.FindOne(ctx, bson.M{"personal_info.email": claims.Email}).Decode(&user)

	switch {
	case err == mongo.ErrNoDocuments:
		username, err := h.generateUsername(ctx, claims.Email)
		if err != nil {
			log.Printf("[GoogleAuth] username lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		user = models.User{
			ID: primitive.NewObjectID(),
			PersonalInfo: models.PersonalInfo{
				Fullname:   claims.Name,
				Email:      claims.Email,
				Username:   username,
				ProfileImg: picture,
			},
			Education:  []models.Education{},
			Experience: []models.Experience{},
			Skills:     []string{},
			GoogleAuth: true,
			Blogs:      []primitive.ObjectID{},
			JoinedAt:   time.Now().Unix(),
		}
		if user.PersonalInfo.ProfileImg == "" {
			user.PersonalInfo.ProfileImg = defaultProfileImg()
		}

		if _, err := h.DB.Users.InsertOne(ctx, user); err != nil {
			log.Printf("[GoogleAuth] insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user account"})
			return
		}

	case err != nil:
		log.Printf("[GoogleAuth] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return

	default:
		if !user.GoogleAuth {
			c.JSON(http.StatusForbidden, gin.H{"error": "This email was signed up without google. Please log in with password to access the account"})
			return
		}
	}

	payload, err := h.formatUserPayload(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

// upgradeGooglePicture swaps the default 96px avatar variant for the 384px one.
func upgradeGooglePicture(picture string) string {
	return strings.Replace(picture, "s96-c", "s384-c", 1)
}

// verifyGoogleIDToken is the production GoogleVerifier.
func verifyGoogleIDToken(ctx context.Context, credential, audience string) (*GoogleClaims, error) {
	payload, err := idtoken.Validate(ctx, credential, audience)
	if err != nil {
		return nil, err
	}

	return &GoogleClaims{
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if val, ok := claims[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
