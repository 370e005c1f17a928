package domain

// Doctor is a public doctor profile. Image holds the raw uploaded bytes.
type Doctor struct {
	ID    string `json:"_id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Image []byte `json:"image" bson:"image"`
}
