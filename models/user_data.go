package models

// UserData keeps the most recent payload submitted by a user.
// It is upserted on every generate call and never deleted.
type UserData struct {
	UserID string `json:"userId"`
	Data   string `json:"data"`
}

// TableName returns the name of the database table
// associated with the UserData model.
func (u UserData) TableName() string {
	return "user_data"
}
