package response

// LoginResponse carries the signed identity token
type LoginResponse struct {
	Token string `json:"token"`
}
