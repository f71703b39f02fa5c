package graph_test

import (
	"carlot/internal/api/graph"
	"carlot/internal/garage"
	"carlot/pkg/domain"
	"carlot/pkg/plate"
	"carlot/pkg/serrors"
	"carlot/pkg/storage"
	"carlot/pkg/storage/memory"
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	mockgarage "carlot/internal/garage/mock"
	mockplate "carlot/pkg/plate/mock"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type carJSON struct {
	ID           string  `json:"id"`
	LicensePlate *string `json:"licensePlate"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         *string `json:"year"`
}

func exec(t *testing.T, schema *graphql.Schema, query string, vars map[string]any, out any) []string {
	t.Helper()

	res := schema.Exec(context.Background(), query, "", vars)
	codes := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		code, _ := e.Extensions["code"].(string)
		codes = append(codes, code)
	}
	if out != nil && len(res.Data) > 0 {
		require.NoError(t, json.Unmarshal(res.Data, out))
	}

	return codes
}

func newMemorySchema(t *testing.T, policy storage.UniquenessPolicy) *graphql.Schema {
	t.Helper()

	g, err := garage.New(garage.Deps{
		Storage: memory.New(memory.Options{Policy: policy}),
		Plates:  plate.NewSwedish(plate.WithRand(rand.New(rand.NewPCG(1, 2)))), //nolint: gosec
	}, garage.Options{})
	require.NoError(t, err)

	schema, err := graph.NewSchema(g, graph.Options{})
	require.NoError(t, err)

	return schema
}

const addCarMutation = `mutation($car: NewCar!) {
	addCar(newCar: $car) { id licensePlate brand model year }
}`

func TestSchemaParses(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := graph.NewSchema(mockgarage.NewMockGarage(ctrl), graph.Options{MaxDepth: 3})
	require.NoError(t, err)
	require.Contains(t, graph.SDL(), "type Query")
}

func TestAddAndQueryCars(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByID())

	id := uuid.New().String()
	var added struct {
		AddCar carJSON `json:"addCar"`
	}
	codes := exec(t, schema, addCarMutation, map[string]any{
		"car": map[string]any{"id": id, "brand": "Saab", "model": "900", "year": "1985"},
	}, &added)
	require.Empty(t, codes)
	require.Equal(t, id, added.AddCar.ID)
	require.NotNil(t, added.AddCar.LicensePlate)
	require.Len(t, []rune(*added.AddCar.LicensePlate), 7)
	require.Equal(t, "1985", *added.AddCar.Year)

	var byID struct {
		CarByID *carJSON `json:"carById"`
	}
	codes = exec(t, schema, `query($id: UUID!) { carById(id: $id) { id brand model } }`,
		map[string]any{"id": id}, &byID)
	require.Empty(t, codes)
	require.NotNil(t, byID.CarByID)
	require.Equal(t, "Saab", byID.CarByID.Brand)

	var all struct {
		Cars []carJSON `json:"cars"`
	}
	exec(t, schema, `{ cars { id } }`, nil, &all)
	require.Len(t, all.Cars, 1)
}

func TestAddCarDuplicate(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByID())

	car := map[string]any{"id": uuid.New().String(), "brand": "Volvo", "model": "240"}
	require.Empty(t, exec(t, schema, addCarMutation, map[string]any{"car": car}, nil))

	codes := exec(t, schema, addCarMutation, map[string]any{"car": car}, nil)
	require.Equal(t, []string{"CONFLICT"}, codes)

	var all struct {
		Cars []carJSON `json:"cars"`
	}
	exec(t, schema, `{ cars { id } }`, nil, &all)
	require.Len(t, all.Cars, 1)
}

func TestAddCarDuplicateBrandModel(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByBrandModel())

	require.Empty(t, exec(t, schema, addCarMutation, map[string]any{
		"car": map[string]any{"id": uuid.New().String(), "brand": "Volvo", "model": "240"},
	}, nil))
	codes := exec(t, schema, addCarMutation, map[string]any{
		"car": map[string]any{"id": uuid.New().String(), "brand": "Volvo", "model": "240"},
	}, nil)
	require.Equal(t, []string{"CONFLICT"}, codes)
}

func TestCarByBrand(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByID())

	for _, c := range [][2]string{{"Volvo", "V60"}, {"Porsche", "911"}, {"Volvo", "142"}} {
		require.Empty(t, exec(t, schema, addCarMutation, map[string]any{
			"car": map[string]any{"id": uuid.New().String(), "brand": c[0], "model": c[1]},
		}, nil))
	}

	var res struct {
		CarByBrand []carJSON `json:"carByBrand"`
	}
	require.Empty(t, exec(t, schema, `{ carByBrand(brand: "Volvo") { model } }`, nil, &res))
	require.Len(t, res.CarByBrand, 2)
	require.Equal(t, "V60", res.CarByBrand[0].Model)
	require.Equal(t, "142", res.CarByBrand[1].Model)

	require.Empty(t, exec(t, schema, `{ carByBrand(brand: "volvo") { model } }`, nil, &res))
	require.Empty(t, res.CarByBrand)
}

func TestCarByIDUnknownIsNull(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByID())

	var res struct {
		CarByID *carJSON `json:"carById"`
	}
	codes := exec(t, schema, `query($id: UUID!) { carById(id: $id) { id } }`,
		map[string]any{"id": uuid.New().String()}, &res)
	require.Empty(t, codes)
	require.Nil(t, res.CarByID)
}

func TestCarByLicensePlateNormalizesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	plates := mockplate.NewMockGenerator(ctrl)
	plates.EXPECT().Generate().Return(domain.LicensePlate("ÅÄÖ 12D"))

	g, err := garage.New(garage.Deps{
		Storage: memory.New(memory.Options{}),
		Plates:  plates,
	}, garage.Options{})
	require.NoError(t, err)
	schema, err := graph.NewSchema(g, graph.Options{})
	require.NoError(t, err)

	id := uuid.New().String()
	require.Empty(t, exec(t, schema, addCarMutation, map[string]any{
		"car": map[string]any{"id": id, "brand": "Volvo", "model": "142"},
	}, nil))

	query := `query($p: LicensePlate!) { carByLicensePlate(licensePlate: $p) { id licensePlate } }`
	var res struct {
		CarByLicensePlate *carJSON `json:"carByLicensePlate"`
	}

	// base letters followed by combining ring above and diaeresis
	decomposed := "A\u030AA\u0308O\u0308 12D"
	require.NotEqual(t, "ÅÄÖ 12D", decomposed)
	require.Empty(t, exec(t, schema, query, map[string]any{"p": decomposed}, &res))
	require.NotNil(t, res.CarByLicensePlate)
	require.Equal(t, id, res.CarByLicensePlate.ID)
	require.Equal(t, "ÅÄÖ 12D", *res.CarByLicensePlate.LicensePlate)

	res.CarByLicensePlate = nil
	require.Empty(t, exec(t, schema, query, map[string]any{"p": "AAO 12D"}, &res))
	require.Nil(t, res.CarByLicensePlate)
}

func TestInvalidUUIDArgument(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByID())

	res := schema.Exec(context.Background(), `query($id: UUID!) { carById(id: $id) { id } }`, "",
		map[string]any{"id": "not-a-uuid"})
	require.NotEmpty(t, res.Errors)
}

func TestGenerateLicensePlate(t *testing.T) {
	schema := newMemorySchema(t, storage.UniqueByID())

	var res struct {
		GenerateLicensePlate string `json:"generateLicensePlate"`
	}
	require.Empty(t, exec(t, schema, `{ generateLicensePlate }`, nil, &res))

	runes := []rune(res.GenerateLicensePlate)
	require.Len(t, runes, 7)
	require.True(t, strings.ContainsRune(plate.FirstLetters, runes[0]))
	require.Equal(t, ' ', runes[3])
	require.True(t, strings.ContainsRune(plate.LastLetters, runes[6]))
}

func TestGeneratedValuesAndScalars(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgarage.NewMockGarage(ctrl)

	id := domain.NewCarID()
	thing := domain.UUIDThing{
		UUID:     uuid.MustParse("3f1c0b6e-5d3a-4b3e-9d0f-2a1b8c7d6e5f"),
		Name:     "Foo",
		Date:     time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		DateTime: time.Date(2024, time.March, 9, 13, 14, 15, 0, time.UTC),
	}
	g.EXPECT().GenerateCarID(gomock.Any()).Return(id)
	g.EXPECT().UUIDThing(gomock.Any()).Return(thing)

	schema, err := graph.NewSchema(g, graph.Options{})
	require.NoError(t, err)

	var res struct {
		GenerateCarID string `json:"generateCarId"`
		UUIDThing     struct {
			UUID     string `json:"uuid"`
			Name     string `json:"name"`
			Date     string `json:"date"`
			DateTime string `json:"dateTime"`
		} `json:"uuidThing"`
	}
	require.Empty(t, exec(t, schema, `{ generateCarId uuidThing { uuid name date dateTime } }`, nil, &res))
	require.Equal(t, id.String(), res.GenerateCarID)
	require.Equal(t, "3f1c0b6e-5d3a-4b3e-9d0f-2a1b8c7d6e5f", res.UUIDThing.UUID)
	require.Equal(t, "Foo", res.UUIDThing.Name)
	require.Equal(t, "2024-03-09", res.UUIDThing.Date)
	require.Equal(t, "2024-03-09T13:14:15Z", res.UUIDThing.DateTime)
}

func TestOwnersResolvedOnDemand(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgarage.NewMockGarage(ctrl)

	car := domain.Car{ID: domain.NewCarID(), Brand: "Volvo", Model: "V60"}
	g.EXPECT().Cars(gomock.Any()).Return([]domain.Car{car}).Times(2)
	g.EXPECT().Owners(gomock.Any(), car).Return([]domain.Person{{ID: "1", Name: "Keith Richards"}}).Times(1)

	schema, err := graph.NewSchema(g, graph.Options{})
	require.NoError(t, err)

	require.Empty(t, exec(t, schema, `{ cars { brand } }`, nil, nil))

	var res struct {
		Cars []struct {
			LicensePlate *string `json:"licensePlate"`
			Owners       []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"owners"`
		} `json:"cars"`
	}
	require.Empty(t, exec(t, schema, `{ cars { licensePlate owners { id name } } }`, nil, &res))
	require.Len(t, res.Cars, 1)
	require.Nil(t, res.Cars[0].LicensePlate)
	require.Equal(t, "Keith Richards", res.Cars[0].Owners[0].Name)
}

func TestInternalErrorsAreMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgarage.NewMockGarage(ctrl)
	g.EXPECT().CarByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))

	schema, err := graph.NewSchema(g, graph.Options{})
	require.NoError(t, err)

	res := schema.Exec(context.Background(), `query($id: UUID!) { carById(id: $id) { id } }`, "",
		map[string]any{"id": uuid.New().String()})
	require.Len(t, res.Errors, 1)
	require.Equal(t, "internal error", res.Errors[0].Message)
	require.Equal(t, serrors.ErrInternal.Error(), res.Errors[0].Extensions["code"])
}

func TestMaxDepth(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema, err := graph.NewSchema(mockgarage.NewMockGarage(ctrl), graph.Options{MaxDepth: 1})
	require.NoError(t, err)

	res := schema.Exec(context.Background(), `{ cars { owners { name } } }`, "", nil)
	require.NotEmpty(t, res.Errors)
}
