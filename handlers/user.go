package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"blogfolio/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchResultsLimit = 10

// UpdateUserDataRequest carries the editable profile fields. All of them are
// overwritten wholesale on update; callers must resend current state for
// fields they want to keep.
type UpdateUserDataRequest struct {
	Fullname    string              `json:"fullname" form:"fullname"`
	Description string              `json:"description" form:"description"`
	Education   []models.Education  `json:"education"`
	Experience  []models.Experience `json:"experience"`
	Skills      []string            `json:"skills"`
}

func userDataProjection(user *models.User) gin.H {
	return gin.H{
		"fullname":    user.PersonalInfo.Fullname,
		"profile_img": user.PersonalInfo.ProfileImg,
		"description": user.PersonalInfo.Description,
		"education":   user.Education,
		"experience":  user.Experience,
		"skills":      user.Skills,
	}
}

func (h *Handler) GetUserData(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = h.DB.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[GetUserData] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, userDataProjection(&user))
}

func (h *Handler) UpdateUserData(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var req UpdateUserDataRequest

	if c.ContentType() == "application/json" {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data"})
			return
		}
	} else {
		if err := c.Request.ParseMultipartForm(10 << 20); err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form data"})
			return
		}
		req.Fullname = c.PostForm("fullname")
		req.Description = c.PostForm("description")

		// Structured fields arrive as JSON-encoded form values
		if v := c.PostForm("education"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Education); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid education data"})
				return
			}
		}
		if v := c.PostForm("experience"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Experience); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experience data"})
				return
			}
		}
		if v := c.PostForm("skills"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Skills); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skills data"})
				return
			}
		}
	}

	if req.Education == nil {
		req.Education = []models.Education{}
	}
	if req.Experience == nil {
		req.Experience = []models.Experience{}
	}
	if req.Skills == nil {
		req.Skills = []string{}
	}

	// Whole-field overwrite, no partial merge: absent fields clear the
	// stored values.
	updateFields := bson.M{
		"personal_info.fullname":    req.Fullname,
		"personal_info.description": req.Description,
		"education":                 req.Education,
		"experience":                req.Experience,
		"skills":                    req.Skills,
	}

	if file, header, err := c.Request.FormFile("profile_img"); err == nil {
		defer file.Close()

		url, err := h.Storage.UploadImage(ctx, file, header.Size)
		if err != nil {
			log.Printf("[UpdateUserData] image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile image"})
			return
		}
		updateFields["personal_info.profile_img"] = url
	}

	var updated models.User
	err = h.DB.Users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("[UpdateUserData] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, userDataProjection(&updated))
}

func (h *Handler) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"personal_info.username": bson.M{"$regex": query, "$options": "i"},
	}

	cursor, err := h.DB.Users.Find(ctx, filter, options.Find().SetLimit(searchResultsLimit))
	if err != nil {
		log.Printf("[SearchUsers] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Printf("[SearchUsers] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Empty match list is a valid response, not a 404
	results := make([]gin.H, 0, len(users))
	for _, user := range users {
		results = append(results, gin.H{
			"user_id":         user.ID.Hex(),
			"username":        user.PersonalInfo.Username,
			"profile_picture": user.PersonalInfo.ProfileImg,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
