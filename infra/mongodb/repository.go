package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freezer/app/item"
	"freezer/domain"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	client *mongo.Client
	items  *mongo.Collection
}

func NewMongoRepository(uri, database string) *MongoRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(15)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		panic(fmt.Errorf("mongodb: connect: %w", err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic(fmt.Errorf("mongodb: ping: %w", err))
	}

	items := client.Database(database).Collection("items")

	// Every list query filters on the owner.
	_, _ = items.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})

	return &MongoRepository{
		client: client,
		items:  items,
	}
}

func (r *MongoRepository) Close() error {
	return r.client.Disconnect(context.Background())
}

// itemDoc is the persisted shape of a domain.Item. Quantities are stored as
// doubles; the decimal values the rest of the application works with are
// converted at this boundary.
type itemDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Description      string             `bson:"description"`
	Category         string             `bson:"category"`
	Location         string             `bson:"location"`
	Quantity         float64            `bson:"quantity"`
	MealsPerQuantity float64            `bson:"meals_per_quantity"`
	Year             int                `bson:"year"`
	Notes            string             `bson:"notes,omitempty"`
	OwnerID          string             `bson:"owner_id"`
	ImageURL         string             `bson:"image_url"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (d itemDoc) toDomain() domain.Item {
	return domain.Item{
		ID:               d.ID.Hex(),
		Description:      d.Description,
		Category:         d.Category,
		Location:         d.Location,
		Quantity:         decimal.NewFromFloat(d.Quantity),
		MealsPerQuantity: decimal.NewFromFloat(d.MealsPerQuantity),
		Year:             d.Year,
		Notes:            d.Notes,
		OwnerID:          d.OwnerID,
		ImageURL:         d.ImageURL,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (r *MongoRepository) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.items.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}

	return items, nil
}

func (r *MongoRepository) GetItem(ctx context.Context, id string) (domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Item{}, item.ErrNotFound
	}

	var doc itemDoc
	err = r.items.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Item{}, item.ErrNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	return doc.toDomain(), nil
}

func (r *MongoRepository) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	now := time.Now().UTC()

	doc := itemDoc{
		Description:      it.Description,
		Category:         it.Category,
		Location:         it.Location,
		Quantity:         it.Quantity.InexactFloat64(),
		MealsPerQuantity: it.MealsPerQuantity.InexactFloat64(),
		Year:             it.Year,
		Notes:            it.Notes,
		OwnerID:          it.OwnerID,
		ImageURL:         it.ImageURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res, err := r.items.InsertOne(ctx, doc)
	if err != nil {
		return domain.Item{}, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)

	return doc.toDomain(), nil
}

func (r *MongoRepository) Update(ctx context.Context, it domain.Item) (domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(it.ID)
	if err != nil {
		return domain.Item{}, item.ErrNotFound
	}

	// owner_id is deliberately not part of the $set: ownership is assigned
	// once at creation.
	update := bson.M{"$set": bson.M{
		"description":        it.Description,
		"category":           it.Category,
		"location":           it.Location,
		"quantity":           it.Quantity.InexactFloat64(),
		"meals_per_quantity": it.MealsPerQuantity.InexactFloat64(),
		"year":               it.Year,
		"notes":              it.Notes,
		"image_url":          it.ImageURL,
		"updated_at":         time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDoc
	err = r.items.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Item{}, item.ErrNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	return doc.toDomain(), nil
}

func (r *MongoRepository) DeleteItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return item.ErrNotFound
	}

	res, err := r.items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return item.ErrNotFound
	}

	return nil
}
