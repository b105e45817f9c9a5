package entity

// db model
type Provider struct {
	Id      int    `json:"providerId" db:"provider_id"`
	Name    string `json:"name" db:"name"`
	Type    string `json:"type" db:"type"`
	Address string `json:"address" db:"address"`
	City    string `json:"city" db:"city"`
	Contact string `json:"contact" db:"contact"`
}

// service + repo input model
type CreateProviderInput struct {
	Name    string // given
	Type    string // given
	Address string // given, optional
	City    string // given
	Contact string // given
	// Id is count+1, set by the repo
}
