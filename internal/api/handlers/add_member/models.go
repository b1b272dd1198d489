package add_member

// AddMemberRequest HTTP request model
type AddMemberRequest struct {
	UserID int64 `json:"userId"`
}
