package entity

// db model
type Receiver struct {
	Id      int    `json:"receiverId" db:"receiver_id"`
	Name    string `json:"name" db:"name"`
	Type    string `json:"type" db:"type"`
	City    string `json:"city" db:"city"`
	Contact string `json:"contact" db:"contact"`
}

// service + repo input model
type CreateReceiverInput struct {
	Name    string
	Type    string
	City    string
	Contact string
}
