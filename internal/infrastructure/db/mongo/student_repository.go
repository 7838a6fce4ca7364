package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

const studentsCollection = "students"

type MongoStudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection(studentsCollection)}
}

type mongoStudent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Status        string             `bson:"status"`
	ProgressHours float64            `bson:"progress_hours"`
	Notes         string             `bson:"notes,omitempty"`
}

func (ms mongoStudent) toDomain() *domain.Student {
	return &domain.Student{
		ID:            ms.ID.Hex(),
		Name:          ms.Name,
		Status:        domain.StudentStatus(ms.Status),
		ProgressHours: ms.ProgressHours,
		Notes:         ms.Notes,
	}
}

func (r *MongoStudentRepository) List(ctx context.Context, filter ports.ListStudentsFilter) ([]*domain.Student, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(filter.Limit)).
		SetSkip(int64(filter.Offset))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	var students []*domain.Student
	for cur.Next(ctx) {
		var ms mongoStudent
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (r *MongoStudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	var ms mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *MongoStudentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	doc := mongoStudent{
		Name:          student.Name,
		Status:        string(student.Status),
		ProgressHours: student.ProgressHours,
		Notes:         student.Notes,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	created := *student
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoStudentRepository) Update(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(student.ID)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":           student.Name,
		"status":         string(student.Status),
		"progress_hours": student.ProgressHours,
		"notes":          student.Notes,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStudentNotFound
	}
	return student, nil
}

func (r *MongoStudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *MongoStudentRepository) CountByStatus(ctx context.Context, status domain.StudentStatus) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}
