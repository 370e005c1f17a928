package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

// appointmentDoc is the stored shape; the domain type keeps its ID as a string.
type appointmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientName string             `bson:"patientName"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone,omitempty"`
	Date        string             `bson:"date"`
	Time        string             `bson:"time"`
	ServiceName string             `bson:"serviceName"`
	Price       float64            `bson:"price"`
	Payment     *domain.Payment    `bson:"payment,omitempty"`
}

func (d appointmentDoc) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:          d.ID.Hex(),
		PatientName: d.PatientName,
		Email:       d.Email,
		Phone:       d.Phone,
		Date:        d.Date,
		Time:        d.Time,
		ServiceName: d.ServiceName,
		Price:       d.Price,
		Payment:     d.Payment,
	}
}

// FindByEmailAndDate returns every appointment booked by email on date.
func (r *AppointmentRepository) FindByEmailAndDate(ctx context.Context, email, date string) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"email": email, "date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []appointmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}

	out := make([]*domain.Appointment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Insert stores a new appointment document.
func (r *AppointmentRepository) Insert(ctx context.Context, a *domain.Appointment) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, appointmentDoc{
		PatientName: a.PatientName,
		Email:       a.Email,
		Phone:       a.Phone,
		Date:        a.Date,
		Time:        a.Time,
		ServiceName: a.ServiceName,
		Price:       a.Price,
		Payment:     a.Payment,
	})
	if err != nil {
		return nil, err
	}
	return toInsertResult(res), nil
}

// FindByID retrieves one appointment by its hex ObjectID.
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d appointmentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

// SetPayment sets the payment field of the matching appointment.
func (r *AppointmentRepository) SetPayment(ctx context.Context, id string, payment domain.Payment) (*domain.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"payment": payment}})
	if err != nil {
		return nil, err
	}
	return toUpdateResult(res), nil
}

// EnsureIndexes creates the compound index used by the list query.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
