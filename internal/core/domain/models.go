package domain

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Body   string `json:"body"`
}

// UserActivity is a user annotated with how many posts they authored.
type UserActivity struct {
	*User
	PostCount int `json:"postCount"`
}

// TrendingPost is a post annotated with its comment count. Author is the
// post's user when known, nil otherwise.
type TrendingPost struct {
	*Post
	Author       *User `json:"author,omitempty"`
	CommentCount int   `json:"commentCount"`
}
