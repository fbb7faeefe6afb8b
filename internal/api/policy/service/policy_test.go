package policyservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCatalogFilter_Empty(t *testing.T) {
	assert.Empty(t, CatalogFilter("", ""))
}

func TestCatalogFilter_Category(t *testing.T) {
	filter := CatalogFilter("Term Life", "")
	assert.Equal(t, bson.M{"category": "Term Life"}, filter)
}

func TestCatalogFilter_Search(t *testing.T) {
	filter := CatalogFilter("", "family")
	title, ok := filter["title"].(bson.M)
	require.True(t, ok)

	re, ok := title["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "family", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestCatalogFilter_SearchQuotesMetacharacters(t *testing.T) {
	filter := CatalogFilter("", "life (gold).plan")
	re := filter["title"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, `life \(gold\)\.plan`, re.Pattern)
}

func TestCatalogFilter_Combined(t *testing.T) {
	filter := CatalogFilter("Senior", "plus")
	assert.Len(t, filter, 2)
	assert.Equal(t, "Senior", filter["category"])
}
