package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

const collectionDoctors = "doctors"

// DoctorRepository implements ports.DoctorRepository using MongoDB.
type DoctorRepository struct {
	col *mongo.Collection
}

// NewDoctorRepository creates a new DoctorRepository.
func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{col: db.Collection(collectionDoctors)}
}

type doctorDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Image primitive.Binary   `bson:"image"`
}

// FindAll returns every doctor, images included.
func (r *DoctorRepository) FindAll(ctx context.Context) ([]*domain.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []doctorDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*domain.Doctor, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Doctor{
			ID:    d.ID.Hex(),
			Name:  d.Name,
			Email: d.Email,
			Image: d.Image.Data,
		})
	}
	return out, nil
}

// Insert stores the doctor with its image as generic BSON binary.
func (r *DoctorRepository) Insert(ctx context.Context, d *domain.Doctor) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doctorDoc{
		Name:  d.Name,
		Email: d.Email,
		Image: primitive.Binary{Subtype: bson.TypeBinaryGeneric, Data: d.Image},
	})
	if err != nil {
		return nil, err
	}
	return toInsertResult(res), nil
}
