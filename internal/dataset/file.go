package dataset

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kjannette/carprice-stats/internal/models"
)

// Field names accepted for each record. The Spanish names come from the
// datasets this service was first fed with.
var (
	yearFields  = []string{"year", "año"}
	priceFields = []string{"price", "precio"}
)

// FileSource reads a listings blob from a fixed path. The blob is a
// binary google.protobuf.Struct keyed by listing id; files ending in
// .json hold the same mapping in JSON form.
type FileSource struct {
	Path string
}

func (f FileSource) Describe() string {
	return "file:" + f.Path
}

func (f FileSource) Listings(_ context.Context) (models.Listings, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", f.Path)
	}
	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		return DecodeJSON(raw)
	}
	return DecodeBlob(raw)
}

// DecodeBlob parses the binary form written by EncodeBlob.
func DecodeBlob(raw []byte) (models.Listings, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "decode blob")
	}
	return fromStruct(&s), nil
}

// DecodeJSON parses {"id": {"year": ..., "price": ...}, ...}.
func DecodeJSON(raw []byte) (models.Listings, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	return fromStruct(&s), nil
}

// EncodeBlob serializes listings into the binary form FileSource reads.
func EncodeBlob(listings models.Listings) ([]byte, error) {
	m := make(map[string]any, len(listings))
	for id, l := range listings {
		m[id] = map[string]any{"year": l.Year, "price": l.Price}
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "build struct")
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(s)
}

// fromStruct does not reject malformed records: a missing or non-numeric
// field becomes NaN and shows up in the statistics instead.
func fromStruct(s *structpb.Struct) models.Listings {
	out := make(models.Listings, len(s.GetFields()))
	for id, v := range s.GetFields() {
		rec := v.GetStructValue()
		out[id] = models.CarListing{
			Year:  numberField(rec, yearFields),
			Price: numberField(rec, priceFields),
		}
	}
	return out
}

func numberField(rec *structpb.Struct, names []string) float64 {
	for _, name := range names {
		v, ok := rec.GetFields()[name]
		if !ok {
			continue
		}
		if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
			return n.NumberValue
		}
		return math.NaN()
	}
	return math.NaN()
}
