package services

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"go-bookstore/models"
)

// Sort modes accepted by the product query pipeline.
const (
	SortNewest    = "" // default: newest first
	SortLowToHigh = "lowToHigh"
	SortHighToLow = "highToLow"
)

// Defaults for paging.
const (
	DefaultPage  = 1
	DefaultLimit = 32
)

// FilterCriteria carries the raw browse/filter input. Category and
// SubCategory are comma-joined sets; MinPrice/MaxPrice are unbounded
// when NaN.
type FilterCriteria struct {
	Search      string
	Category    string
	SubCategory string
	MinPrice    float64
	MaxPrice    float64
	Sort        string
	Page        int
	Limit       int
}

// NewFilterCriteria returns criteria with unbounded prices and default
// paging.
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		MinPrice: math.NaN(),
		MaxPrice: math.NaN(),
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}
}

// ProductPage is one page of a filtered product listing. TotalCount is
// the post-filter, pre-pagination count.
type ProductPage struct {
	Products   []models.Product `json:"products"`
	TotalCount int              `json:"totalCount"`
}

// priceOf coerces a product's price to a number, NaN when unparseable.
func priceOf(p models.Product) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// searchText joins every searchable field of a product into one
// lowercase haystack.
func searchText(p models.Product) string {
	fields := append([]string{p.Title, p.SKU, p.Brand, p.Category}, p.SubCategory...)
	return strings.ToLower(strings.Join(fields, " "))
}

func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// FilterProducts runs the full query pipeline over an in-memory product
// snapshot: search, category, subcategory, price range, sort, paginate.
// The steps always apply in that order. It never mutates its input and
// an empty result is not an error.
func FilterProducts(products []models.Product, c FilterCriteria) ProductPage {
	kept := make([]models.Product, 0, len(products))
	kept = append(kept, products...)

	if terms := strings.Fields(strings.ToLower(c.Search)); len(terms) > 0 {
		kept = retain(kept, func(p models.Product) bool {
			text := searchText(p)
			for _, t := range terms {
				if !strings.Contains(text, t) {
					return false
				}
			}
			return true
		})
	}

	if cats := splitSet(c.Category); cats != nil {
		kept = retain(kept, func(p models.Product) bool {
			return contains(cats, p.Category)
		})
	}

	if subs := splitSet(c.SubCategory); subs != nil {
		kept = retain(kept, func(p models.Product) bool {
			for _, sc := range p.SubCategory {
				if contains(subs, sc) {
					return true
				}
			}
			return false
		})
	}

	// NaN prices fail any active bound: a NaN comparison is always
	// false, so price >= min never holds.
	kept = retain(kept, func(p models.Product) bool {
		price := priceOf(p)
		if !math.IsNaN(c.MinPrice) && !(price >= c.MinPrice) {
			return false
		}
		if !math.IsNaN(c.MaxPrice) && !(price <= c.MaxPrice) {
			return false
		}
		return true
	})

	switch c.Sort {
	case SortLowToHigh:
		sort.SliceStable(kept, func(i, j int) bool {
			return priceOf(kept[i]) < priceOf(kept[j])
		})
	case SortHighToLow:
		sort.SliceStable(kept, func(i, j int) bool {
			return priceOf(kept[i]) > priceOf(kept[j])
		})
	default:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].CreatedAt.After(kept[j].CreatedAt)
		})
	}

	totalCount := len(kept)

	page, limit := c.Page, c.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}

	return ProductPage{Products: kept[start:end], TotalCount: totalCount}
}

func retain(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
