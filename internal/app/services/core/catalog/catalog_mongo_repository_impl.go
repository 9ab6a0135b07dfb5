package catalog

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogMongoRepository backs the four catalog collections: tests,
// packages, xrays and their categories.
type CatalogMongoRepository struct {
	Tests      *mongo.Collection
	Packages   *mongo.Collection
	Xrays      *mongo.Collection
	Categories *mongo.Collection
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) contracts.CatalogRepository {
	database := db.Database(dbName)
	return &CatalogMongoRepository{
		Tests:      database.Collection(constvars.MongoCollectionTests),
		Packages:   database.Collection(constvars.MongoCollectionPackages),
		Xrays:      database.Collection(constvars.MongoCollectionXrays),
		Categories: database.Collection(constvars.MongoCollectionCategories),
	}
}

func (r *CatalogMongoRepository) CreateTest(ctx context.Context, test *models.Test) (string, error) {
	result, err := r.Tests.InsertOne(ctx, test)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CatalogMongoRepository) FindTestByID(ctx context.Context, testID string) (*models.Test, error) {
	objectID, err := primitive.ObjectIDFromHex(testID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var test models.Test
	err = r.Tests.FindOne(ctx, bson.M{"_id": objectID}).Decode(&test)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &test, nil
}

func (r *CatalogMongoRepository) FindTestsByIDs(ctx context.Context, testIDs []string) ([]models.Test, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(testIDs))
	for _, testID := range testIDs {
		objectID, err := primitive.ObjectIDFromHex(testID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	cursor, err := r.Tests.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var tests []models.Test
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tests, nil
}

func (r *CatalogMongoRepository) FindTestsByCategory(ctx context.Context, categoryID string) ([]models.Test, error) {
	cursor, err := r.Tests.Find(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var tests []models.Test
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tests, nil
}

func (r *CatalogMongoRepository) UpdateTest(ctx context.Context, test *models.Test) error {
	return r.updateCatalogItem(ctx, r.Tests, test.ID, bson.M{
		"name":       test.Name,
		"price":      test.Price,
		"offerPrice": test.OfferPrice,
	}, exceptions.ErrTestNotFound)
}

func (r *CatalogMongoRepository) DeleteTestByID(ctx context.Context, testID string) error {
	return r.deleteCatalogItem(ctx, r.Tests, testID, exceptions.ErrTestNotFound)
}

func (r *CatalogMongoRepository) CreatePackage(ctx context.Context, pkg *models.Package) (string, error) {
	result, err := r.Packages.InsertOne(ctx, pkg)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CatalogMongoRepository) FindPackageByID(ctx context.Context, packageID string) (*models.Package, error) {
	objectID, err := primitive.ObjectIDFromHex(packageID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var pkg models.Package
	err = r.Packages.FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &pkg, nil
}

func (r *CatalogMongoRepository) FindAllPackages(ctx context.Context) ([]models.Package, error) {
	cursor, err := r.Packages.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return packages, nil
}

func (r *CatalogMongoRepository) UpdatePackage(ctx context.Context, pkg *models.Package) error {
	return r.updateCatalogItem(ctx, r.Packages, pkg.ID, bson.M{
		"name":       pkg.Name,
		"testIds":    pkg.TestIDs,
		"price":      pkg.Price,
		"offerPrice": pkg.OfferPrice,
	}, exceptions.ErrPackageNotFound)
}

func (r *CatalogMongoRepository) DeletePackageByID(ctx context.Context, packageID string) error {
	return r.deleteCatalogItem(ctx, r.Packages, packageID, exceptions.ErrPackageNotFound)
}

func (r *CatalogMongoRepository) CreateXray(ctx context.Context, xray *models.Xray) (string, error) {
	result, err := r.Xrays.InsertOne(ctx, xray)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CatalogMongoRepository) FindXrayByID(ctx context.Context, xrayID string) (*models.Xray, error) {
	objectID, err := primitive.ObjectIDFromHex(xrayID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var xray models.Xray
	err = r.Xrays.FindOne(ctx, bson.M{"_id": objectID}).Decode(&xray)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &xray, nil
}

func (r *CatalogMongoRepository) UpdateXray(ctx context.Context, xray *models.Xray) error {
	return r.updateCatalogItem(ctx, r.Xrays, xray.ID, bson.M{
		"name":       xray.Name,
		"price":      xray.Price,
		"offerPrice": xray.OfferPrice,
	}, exceptions.ErrXrayNotFound)
}

func (r *CatalogMongoRepository) DeleteXrayByID(ctx context.Context, xrayID string) error {
	return r.deleteCatalogItem(ctx, r.Xrays, xrayID, exceptions.ErrXrayNotFound)
}

func (r *CatalogMongoRepository) CreateCategory(ctx context.Context, category *models.Category) (string, error) {
	result, err := r.Categories.InsertOne(ctx, category)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CatalogMongoRepository) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.Categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return categories, nil
}

func (r *CatalogMongoRepository) DeleteCategoryByID(ctx context.Context, categoryID string) error {
	return r.deleteCatalogItem(ctx, r.Categories, categoryID, exceptions.ErrCategoryNotFound)
}

func (r *CatalogMongoRepository) updateCatalogItem(ctx context.Context, collection *mongo.Collection, id string, fields bson.M, notFound func(error) *exceptions.CustomError) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	fields["updatedAt"] = time.Now()
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return notFound(fmt.Errorf("%s %s", collection.Name(), id))
	}
	return nil
}

func (r *CatalogMongoRepository) deleteCatalogItem(ctx context.Context, collection *mongo.Collection, id string, notFound func(error) *exceptions.CustomError) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return notFound(fmt.Errorf("%s %s", collection.Name(), id))
	}
	return nil
}
