package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"musabaqa/domain"
)

const MongoCollection = "registrationforms"

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) domain.RegistrationRepo {
	return &mongoRepository{
		coll: database.Collection(MongoCollection),
	}
}

// EnsureMongoIndexes creates the unique indexes that back every UniqueRule,
// plus lookup indexes for listing. Safe to call on every boot.
func EnsureMongoIndexes(ctx context.Context, database *mongo.Database) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "first_name", Value: 1},
				{Key: "middle_name", Value: 1},
				{Key: "surname", Value: 1},
				{Key: "date_of_birth", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(domain.RuleNaturalKey.IndexName()),
		},
		{
			Keys:    bson.D{{Key: "email_address", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(domain.RuleEmail.IndexName()),
		},
		{
			Keys:    bson.D{{Key: "phone_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(domain.RulePhone.IndexName()),
		},
		{
			Keys:    bson.D{{Key: "bank_details.account_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(domain.RuleAccountNumber.IndexName()),
		},
		{
			Keys:    bson.D{{Key: "year_of_musabaqa", Value: 1}},
			Options: options.Index().SetName("year_of_musabaqa_index"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_index"),
		},
	}

	if _, err := database.Collection(MongoCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create registration indexes: %w", err)
	}
	return nil
}

func ruleFilter(rule domain.UniqueRule, candidate *domain.Registration) bson.M {
	switch rule {
	case domain.RuleNaturalKey:
		return bson.M{
			"first_name":    candidate.FirstName,
			"middle_name":   candidate.MiddleName,
			"surname":       candidate.Surname,
			"date_of_birth": candidate.DateOfBirth,
		}
	case domain.RuleEmail:
		return bson.M{"email_address": candidate.EmailAddress}
	case domain.RulePhone:
		return bson.M{"phone_number": candidate.PhoneNumber}
	case domain.RuleAccountNumber:
		return bson.M{"bank_details.account_number": candidate.BankDetails.AccountNumber}
	}
	return nil
}

// translateMongoError turns duplicate key errors into a DuplicateError naming
// the violated index and everything else into ErrStoreUnavailable.
func translateMongoError(action string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		for _, rule := range domain.UniqueRules {
			if containsIndexName(err, rule.IndexName()) {
				return domain.NewDuplicateError(rule)
			}
		}
		return &domain.DuplicateError{}
	}
	return fmt.Errorf("%w: could not %s registration: %w", domain.ErrStoreUnavailable, action, err)
}

func containsIndexName(err error, name string) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 && strings.Contains(e.Message, name) {
				return true
			}
		}
		return false
	}
	return strings.Contains(err.Error(), name)
}

func (mr *mongoRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if _, err := mr.coll.InsertOne(ctx, reg); err != nil {
		return translateMongoError("insert", err)
	}
	return nil
}

func (mr *mongoRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	var reg domain.Registration
	err := mr.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: could not get registration: %w", domain.ErrStoreUnavailable, err)
	}
	return &reg, nil
}

func (mr *mongoRepository) Update(ctx context.Context, reg *domain.Registration) error {
	res, err := mr.coll.ReplaceOne(ctx, bson.M{"_id": reg.ID}, reg)
	if err != nil {
		return translateMongoError("update", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (mr *mongoRepository) Delete(ctx context.Context, id string) error {
	res, err := mr.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: could not delete registration: %w", domain.ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (mr *mongoRepository) List(ctx context.Context) ([]domain.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := mr.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list registrations: %w", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	regs := make([]domain.Registration, 0)
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, fmt.Errorf("%w: could not decode registrations: %w", domain.ErrStoreUnavailable, err)
	}
	return regs, nil
}

func (mr *mongoRepository) ExistsByRule(ctx context.Context, rule domain.UniqueRule, candidate *domain.Registration, excludeID string) (bool, error) {
	filter := ruleFilter(rule, candidate)
	if filter == nil {
		return false, fmt.Errorf("unknown uniqueness rule %d", rule)
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := mr.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("%w: could not check %s: %w", domain.ErrStoreUnavailable, rule, err)
	}
	return count > 0, nil
}

func (mr *mongoRepository) Ping(ctx context.Context) error {
	if err := mr.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
