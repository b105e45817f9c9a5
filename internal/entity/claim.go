package entity

// db model
type Claim struct {
	Id         int    `json:"claimId" db:"claim_id"`
	FoodId     int    `json:"foodId" db:"food_id"`
	ReceiverId int    `json:"receiverId" db:"receiver_id"`
	Status     string `json:"status" db:"status"`
	Timestamp  string `json:"timestamp" db:"timestamp"` // YYYY-MM-DD HH:MM:SS
}

// service + repo input model
type CreateClaimInput struct {
	FoodId     int
	ReceiverId int
	Status     string // should be set: "Pending" when not given
	Timestamp  string // should be set: now
}
