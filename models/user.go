package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PersonalInfo struct {
	Fullname    string `bson:"fullname" json:"fullname"`
	Email       string `bson:"email" json:"email"`
	Password    string `bson:"password,omitempty" json:"-"`
	Username    string `bson:"username" json:"username"`
	Bio         string `bson:"bio" json:"bio"`
	ProfileImg  string `bson:"profile_img" json:"profile_img"`
	Description string `bson:"description" json:"description"`
}

type Education struct {
	Degree     string `bson:"degree" json:"degree"`
	Year       string `bson:"year" json:"year"` // YYYY-YYYY
	GPA        string `bson:"gpa,omitempty" json:"gpa,omitempty"`
	University string `bson:"university" json:"university"`
}

type Experience struct {
	Title   string `bson:"title" json:"title"`
	Company string `bson:"company" json:"company"`
	Years   string `bson:"years" json:"years"`
	Details string `bson:"details" json:"details"`
}

type SocialLinks struct {
	Youtube   string `bson:"youtube" json:"youtube"`
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Twitter   string `bson:"twitter" json:"twitter"`
	Github    string `bson:"github" json:"github"`
	Website   string `bson:"website" json:"website"`
}

type AccountInfo struct {
	TotalPosts int64 `bson:"total_posts" json:"total_posts"`
	TotalReads int64 `bson:"total_reads" json:"total_reads"`
}

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PersonalInfo PersonalInfo         `bson:"personal_info" json:"personal_info"`
	Education    []Education          `bson:"education" json:"education"`
	Experience   []Experience         `bson:"experience" json:"experience"`
	Skills       []string             `bson:"skills" json:"skills"`
	SocialLinks  SocialLinks          `bson:"social_links" json:"social_links"`
	AccountInfo  AccountInfo          `bson:"account_info" json:"account_info"`
	GoogleAuth   bool                 `bson:"google_auth" json:"google_auth"`
	Blogs        []primitive.ObjectID `bson:"blogs" json:"blogs"`
	JoinedAt     int64                `bson:"joinedAt" json:"joinedAt"`
}
