package dto

// SendMessageForm is the multipart form of POST /sendMessage. Text
// messages carry their body in Message; image/video/doc messages carry a
// pre-uploaded asset URL in ImageURL, or attach the asset itself as the
// "file" part to have the server store it.
type SendMessageForm struct {
	SenderID    string `form:"senderId" binding:"required" example:"user_2aB3cD4eF"`
	RoomID      int64  `form:"roomId" binding:"required" example:"7"`
	MessageType string `form:"messageType" binding:"required" example:"text"`
	Message     string `form:"message" example:"anyone up for mock interviews?"`
	ImageURL    string `form:"imageUrl"`
}
