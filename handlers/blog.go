package handlers

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"blogfolio/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const latestBlogsLimit = 5

type CreateBlogRequest struct {
	Title   string             `json:"title"`
	Des     string             `json:"des"`
	Banner  string             `json:"banner"`
	Tags    []string           `json:"tags"`
	Content models.BlogContent `json:"content"`
	Draft   bool               `json:"draft"`
}

// validateBlogInput enforces the publish rules. Drafts only need a title;
// published blogs additionally need a description, banner, content and tags
// within their caps.
func validateBlogInput(req *CreateBlogRequest) string {
	if len(req.Title) == 0 {
		return "You must provide a title"
	}

	if req.Draft {
		return ""
	}

	if len(req.Des) == 0 || utf8.RuneCountInString(req.Des) > 200 {
		return "You must provide project description and should be under 200 words"
	}
	if len(req.Banner) == 0 {
		return "You must provide project banner"
	}
	if len(req.Content.Blocks) == 0 {
		return "There must be some project content"
	}
	if len(req.Tags) == 0 || len(req.Tags) > 10 {
		return "Provide tags in order to publish the blog, maximum 10"
	}

	return ""
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// slugifyTitle maps non-alphanumerics to spaces and whitespace runs to
// hyphens. The caller appends a random suffix for uniqueness.
func slugifyTitle(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(title, " ")
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(slug), "-")
}

func (h *Handler) CreateBlog(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid request body"})
		return
	}

	if msg := validateBlogInput(&req); msg != "" {
		c.JSON(http.StatusForbidden, gin.H{"error": msg})
		return
	}

	authorID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	tags := make([]string, len(req.Tags))
	for i, tag := range req.Tags {
		tags[i] = strings.ToLower(tag)
	}

	blog := models.Blog{
		ID:          primitive.NewObjectID(),
		BlogID:      slugifyTitle(req.Title) + randomSuffix(10),
		Title:       req.Title,
		Des:         req.Des,
		Banner:      req.Banner,
		Content:     req.Content,
		Tags:        tags,
		Author:      authorID,
		Draft:       req.Draft,
		PublishedAt: time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := h.DB.Blogs.InsertOne(ctx, blog); err != nil {
		log.Printf("[CreateBlog] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}

	// Second, independent write: the blog is already persisted, a failure
	// here leaves the counter behind with no rollback.
	incrementVal := 1
	if req.Draft {
		incrementVal = 0
	}

	_, err = h.DB.Users.UpdateOne(ctx, bson.M{"_id": authorID}, bson.M{
		"$inc":  bson.M{"account_info.total_posts": incrementVal},
		"$push": bson.M{"blogs": blog.ID},
	})
	if err != nil {
		log.Printf("[CreateBlog] author update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update total posts number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": blog.BlogID})
}

func (h *Handler) LatestBlogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}}).
		SetLimit(latestBlogsLimit)

	cursor, err := h.DB.Blogs.Find(ctx, bson.M{"draft": false}, opts)
	if err != nil {
		log.Printf("[LatestBlogs] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
		return
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		log.Printf("[LatestBlogs] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode blogs"})
		return
	}

	result := make([]gin.H, 0, len(blogs))
	for _, blog := range blogs {
		var author models.User
		authorInfo := gin.H{"username": "", "profile_img": ""}

		err := h.DB.Users.FindOne(ctx, bson.M{"_id": blog.Author}).Decode(&author)
		if err == nil {
			authorInfo["username"] = author.PersonalInfo.Username
			authorInfo["profile_img"] = author.PersonalInfo.ProfileImg
		}

		result = append(result, gin.H{
			"blog_id":     blog.BlogID,
			"title":       blog.Title,
			"des":         blog.Des,
			"banner":      blog.Banner,
			"content":     blog.Content,
			"tags":        blog.Tags,
			"publishedAt": blog.PublishedAt,
			"author":      gin.H{"personal_info": authorInfo},
		})
	}

	c.JSON(http.StatusOK, gin.H{"blogs": result})
}
