package v1handler

import (
	"carlot/pkg/domain"
	"carlot/pkg/serrors"
	"io"
	"net/http"
)

// maxBodyBytes bounds the size of request payloads.
const maxBodyBytes = 1 << 20

// ListCars returns all cars, or only those of the brand query parameter.
func (h Handler) ListCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cars []domain.Car
	if r.URL.Query().Has("brand") {
		cars = h.deps.Garage.CarsByBrand(ctx, r.URL.Query().Get("brand"))
	} else {
		cars = h.deps.Garage.Cars(ctx)
	}

	writeJSON(ctx, w, http.StatusOK, encodeCars(cars))
}

// GetCar returns a car by ID.
func (h Handler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCarID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid car id %q", r.PathValue("id")))

		return
	}

	car, err := h.deps.Garage.CarByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, encodeCar(*car))
}

// AddCar registers a car and returns it with its assigned plate.
func (h Handler) AddCar(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}

	newCar, err := decodeNewCar(body)
	if err != nil {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid car: %s", err))

		return
	}

	car, err := h.deps.Garage.AddCar(r.Context(), newCar)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, encodeCar(*car))
}

// GenerateLicensePlate returns a fresh plate without storing anything.
func (h Handler) GenerateLicensePlate(w http.ResponseWriter, r *http.Request) {
	p := h.deps.Garage.GenerateLicensePlate(r.Context())

	writeJSON(r.Context(), w, http.StatusCreated, encodeLicensePlate(p))
}
