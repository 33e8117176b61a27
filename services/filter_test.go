package services

import (
	"fmt"
	"math"
	"testing"
	"time"

	"go-bookstore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func makeProduct(title, price string, age time.Duration) models.Product {
	return models.Product{
		Title:     title,
		Price:     price,
		Stock:     "5",
		Category:  "Books",
		Brand:     "Acme Press",
		SKU:       "SKU-" + title,
		CreatedAt: filterBase.Add(-age),
	}
}

func TestFilterProducts_DefaultsNewestFirst(t *testing.T) {
	products := []models.Product{
		makeProduct("Oldest", "10", 3*time.Hour),
		makeProduct("Newest", "20", 0),
		makeProduct("Middle", "15", 1*time.Hour),
	}

	page := FilterProducts(products, NewFilterCriteria())

	require.Len(t, page.Products, 3)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, "Newest", page.Products[0].Title)
	assert.Equal(t, "Middle", page.Products[1].Title)
	assert.Equal(t, "Oldest", page.Products[2].Title)
}

func TestFilterProducts_TotalCountIsStoreSizeWithoutFilters(t *testing.T) {
	var products []models.Product
	for i := 0; i < 40; i++ {
		products = append(products, makeProduct(fmt.Sprintf("Book %02d", i), "9.99", time.Duration(i)*time.Minute))
	}

	page := FilterProducts(products, NewFilterCriteria())

	assert.Equal(t, 40, page.TotalCount)
	assert.Len(t, page.Products, DefaultLimit)
}

func TestFilterProducts_SearchAllTermsRequired(t *testing.T) {
	products := []models.Product{
		{Title: "Modern Fiction", Brand: "Press", Category: "Books", SubCategory: []string{"Bestseller Picks"}, Price: "10", CreatedAt: filterBase},
		{Title: "Fiction Weekly", Brand: "Press", Category: "Books", SubCategory: []string{"New"}, Price: "10", CreatedAt: filterBase},
		{Title: "Gardening", Brand: "Press", Category: "Books", SubCategory: []string{"Bestseller Picks"}, Price: "10", CreatedAt: filterBase},
	}

	criteria := NewFilterCriteria()
	criteria.Search = "FICTION bestseller"
	page := FilterProducts(products, criteria)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "Modern Fiction", page.Products[0].Title)
	assert.Equal(t, 1, page.TotalCount)
}

func TestFilterProducts_SearchMatchesSKUAndBrand(t *testing.T) {
	products := []models.Product{
		{Title: "Something", SKU: "ABC-123", Brand: "Penguin", Category: "Books", Price: "10", CreatedAt: filterBase},
	}

	for _, term := range []string{"abc-123", "penguin", "books"} {
		criteria := NewFilterCriteria()
		criteria.Search = term
		page := FilterProducts(products, criteria)
		assert.Equal(t, 1, page.TotalCount, "term %q should match", term)
	}
}

func TestFilterProducts_WhitespaceSearchIsNoop(t *testing.T) {
	products := []models.Product{
		makeProduct("A", "1", 0),
		makeProduct("B", "2", time.Minute),
	}

	criteria := NewFilterCriteria()
	criteria.Search = "   "
	page := FilterProducts(products, criteria)

	assert.Equal(t, 2, page.TotalCount)
}

func TestFilterProducts_CategorySet(t *testing.T) {
	products := []models.Product{
		{Title: "A", Category: "Fiction", Price: "1", CreatedAt: filterBase},
		{Title: "B", Category: "History", Price: "1", CreatedAt: filterBase},
		{Title: "C", Category: "Science", Price: "1", CreatedAt: filterBase},
	}

	criteria := NewFilterCriteria()
	criteria.Category = "Fiction,Science"
	page := FilterProducts(products, criteria)

	require.Equal(t, 2, page.TotalCount)
	for _, p := range page.Products {
		assert.Contains(t, []string{"Fiction", "Science"}, p.Category)
	}
}

func TestFilterProducts_SubCategoryAnyIntersect(t *testing.T) {
	products := []models.Product{
		{Title: "A", SubCategory: []string{"Top Sellers", "Hot Reads"}, Price: "1", CreatedAt: filterBase},
		{Title: "B", SubCategory: []string{"Clearance Corner"}, Price: "1", CreatedAt: filterBase},
		{Title: "C", SubCategory: nil, Price: "1", CreatedAt: filterBase},
	}

	criteria := NewFilterCriteria()
	criteria.SubCategory = "Hot Reads,Fresh Reads"
	page := FilterProducts(products, criteria)

	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "A", page.Products[0].Title)
}

func TestFilterProducts_PriceRange(t *testing.T) {
	products := []models.Product{
		makeProduct("Cheap", "5", 0),
		makeProduct("InRangeLow", "10", 0),
		makeProduct("InRangeHigh", "20", 0),
		makeProduct("Expensive", "25", 0),
		makeProduct("Broken", "n/a", 0),
	}

	criteria := NewFilterCriteria()
	criteria.MinPrice = 10
	criteria.MaxPrice = 20
	page := FilterProducts(products, criteria)

	require.Equal(t, 2, page.TotalCount)
	titles := []string{page.Products[0].Title, page.Products[1].Title}
	assert.ElementsMatch(t, []string{"InRangeLow", "InRangeHigh"}, titles)
}

func TestFilterProducts_UnparseablePriceExcludedByActiveBound(t *testing.T) {
	products := []models.Product{
		makeProduct("Broken", "not-a-number", 0),
	}

	criteria := NewFilterCriteria()
	criteria.MinPrice = 0
	page := FilterProducts(products, criteria)
	assert.Equal(t, 0, page.TotalCount)

	// Without bounds the same product passes through.
	page = FilterProducts(products, NewFilterCriteria())
	assert.Equal(t, 1, page.TotalCount)
}

func TestFilterProducts_SortByPrice(t *testing.T) {
	products := []models.Product{
		makeProduct("Mid", "15", 0),
		makeProduct("Low", "5", time.Minute),
		makeProduct("High", "30", 2*time.Minute),
	}

	criteria := NewFilterCriteria()
	criteria.Sort = SortLowToHigh
	page := FilterProducts(products, criteria)
	require.Len(t, page.Products, 3)
	assert.Equal(t, "Low", page.Products[0].Title)
	assert.Equal(t, "High", page.Products[2].Title)

	criteria.Sort = SortHighToLow
	page = FilterProducts(products, criteria)
	require.Len(t, page.Products, 3)
	assert.Equal(t, "High", page.Products[0].Title)
	assert.Equal(t, "Low", page.Products[2].Title)
}

func TestFilterProducts_Pagination(t *testing.T) {
	var products []models.Product
	for i := 0; i < 12; i++ {
		products = append(products, makeProduct(fmt.Sprintf("Book %02d", i), "10", time.Duration(i)*time.Minute))
	}

	criteria := NewFilterCriteria()
	criteria.Page = 2
	criteria.Limit = 5
	page := FilterProducts(products, criteria)

	assert.Equal(t, 12, page.TotalCount)
	require.Len(t, page.Products, 5)
	// Newest-first: page 2 starts at offset 5.
	assert.Equal(t, "Book 05", page.Products[0].Title)
	assert.Equal(t, "Book 09", page.Products[4].Title)
}

func TestFilterProducts_PageBeyondEndIsEmptyNotError(t *testing.T) {
	products := []models.Product{makeProduct("Only", "10", 0)}

	criteria := NewFilterCriteria()
	criteria.Page = 9
	criteria.Limit = 5
	page := FilterProducts(products, criteria)

	assert.Empty(t, page.Products)
	assert.Equal(t, 1, page.TotalCount)
}

func TestFilterProducts_ZeroMatchesIsValid(t *testing.T) {
	products := []models.Product{makeProduct("Only", "10", 0)}

	criteria := NewFilterCriteria()
	criteria.Search = "nothing matches this"
	page := FilterProducts(products, criteria)

	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.TotalCount)
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		makeProduct("B", "2", 0),
		makeProduct("A", "1", time.Minute),
	}
	criteria := NewFilterCriteria()
	criteria.Sort = SortLowToHigh
	FilterProducts(products, criteria)

	assert.Equal(t, "B", products[0].Title)
	assert.Equal(t, "A", products[1].Title)
}

func TestPriceOf(t *testing.T) {
	assert.Equal(t, 12.5, priceOf(models.Product{Price: "12.5"}))
	assert.Equal(t, 7.0, priceOf(models.Product{Price: " 7 "}))
	assert.True(t, math.IsNaN(priceOf(models.Product{Price: "abc"})))
	assert.True(t, math.IsNaN(priceOf(models.Product{Price: ""})))
}
