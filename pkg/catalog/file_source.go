package catalog

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gift-recommender-be/internal/entity"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// catalogNamespace derives stable ids for records whose id is not a UUID.
var catalogNamespace = uuid.MustParse("6f1c1a52-9a0c-4d8e-b7a5-2f0e5c8d4b61")

// fileRecord mirrors entity.Product with a loose id. Both "id" and the "_id"
// key of document-store exports are accepted, as a string, a number or an
// {"$oid": "..."} object.
type fileRecord struct {
	RawID        interface{}       `json:"id"`
	MongoID      interface{}       `json:"_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        looseFloat        `json:"price"`
	Image        string            `json:"image"`
	Url          string            `json:"url"`
	Tags         entity.StringList `json:"tags"`
	Occasion     entity.StringList `json:"occasion"`
	Season       entity.StringList `json:"season"`
	Seasons      entity.StringList `json:"seasons"`
	Category     string            `json:"category"`
	SubCategory  string            `json:"subCategory"`
	Brand        string            `json:"brand"`
	TargetGender string            `json:"targetGender"`
	AgeGroup     string            `json:"ageGroup"`
	Interests    entity.StringList `json:"interests"`
}

func (r fileRecord) toProduct(index int) *entity.Product {
	return &entity.Product{
		Id:           recordID(r, index),
		Name:         r.Name,
		Description:  r.Description,
		Price:        float64(r.Price),
		Image:        r.Image,
		Url:          r.Url,
		Tags:         r.Tags,
		Occasion:     r.Occasion,
		Season:       r.Season,
		Seasons:      r.Seasons,
		Category:     r.Category,
		SubCategory:  r.SubCategory,
		Brand:        r.Brand,
		TargetGender: r.TargetGender,
		AgeGroup:     r.AgeGroup,
		Interests:    r.Interests,
	}
}

// FileSource reads a JSON array of products. The file is parsed once and
// re-read only when its modification time changes.
type FileSource struct {
	path string

	mu       sync.Mutex
	modTime  int64
	products []*entity.Product
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) All(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.products == nil || info.ModTime().UnixNano() != s.modTime {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		products, err := ParseProducts(raw)
		if err != nil {
			return nil, err
		}
		s.products = products
		s.modTime = info.ModTime().UnixNano()
	}

	out := make([]*entity.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// RecordError reports a catalog record that could not be decoded.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("catalog record %d: %v", e.Index, e.Err)
}

// ParseProducts decodes a JSON array of catalog records. Records that do not
// decode are dropped; only a malformed array fails.
func ParseProducts(raw []byte) ([]*entity.Product, error) {
	products, _, err := DecodeProducts(raw)
	return products, err
}

// DecodeProducts is ParseProducts that also returns the dropped records.
func DecodeProducts(raw []byte) ([]*entity.Product, []RecordError, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]*entity.Product, 0, len(records))
	var skipped []RecordError
	for i, rec := range records {
		var r fileRecord
		if err := json.Unmarshal(rec, &r); err != nil {
			skipped = append(skipped, RecordError{Index: i, Err: err})
			continue
		}
		products = append(products, r.toProduct(i))
	}
	return products, skipped, nil
}

// looseFloat accepts a JSON number or a numeric string ("250", "1,200").
// Empty strings and null read as zero.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*f = 0
	case float64:
		*f = looseFloat(t)
	case string:
		text := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if text == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("price %q is not a number", t)
		}
		*f = looseFloat(n)
	default:
		return fmt.Errorf("price must be a number, got %s", string(data))
	}
	return nil
}

func recordID(r fileRecord, index int) uuid.UUID {
	raw := idString(r.RawID)
	if raw == "" {
		raw = idString(r.MongoID)
	}
	if raw == "" {
		raw = fmt.Sprintf("%s#%d", r.Name, index)
	}
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	return uuid.NewSHA1(catalogNamespace, []byte(raw))
}

func idString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return fmt.Sprintf("%.0f", t)
	case map[string]interface{}:
		if oid, ok := t["$oid"].(string); ok {
			return oid
		}
	}
	return ""
}
