package v1handler

import (
	"carlot/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func encodeCarFields(e *jx.Encoder, car domain.Car) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(car.ID.String())
	e.FieldStart("licensePlate")
	if car.LicensePlate != nil {
		e.Str(car.LicensePlate.String())
	} else {
		e.Null()
	}
	e.FieldStart("brand")
	e.Str(car.Brand)
	e.FieldStart("model")
	e.Str(car.Model)
	e.FieldStart("year")
	if car.Year != nil {
		e.Str(*car.Year)
	} else {
		e.Null()
	}
	e.ObjEnd()
}

func encodeCar(car domain.Car) []byte {
	var e jx.Encoder
	encodeCarFields(&e, car)

	return e.Bytes()
}

func encodeCars(cars []domain.Car) []byte {
	var e jx.Encoder
	e.ArrStart()
	for i := range cars {
		encodeCarFields(&e, cars[i])
	}
	e.ArrEnd()

	return e.Bytes()
}

func encodeLicensePlate(p domain.LicensePlate) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("licensePlate")
	e.Str(p.String())
	e.ObjEnd()

	return e.Bytes()
}

func encodeError(res ErrorResponse) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	return e.Bytes()
}

// decodeNewCar reads a {"id", "brand", "model", "year"} object. Unknown
// fields are ignored; id, brand and model are required.
func decodeNewCar(data []byte) (domain.NewCar, error) {
	var car domain.NewCar
	var hasID, hasBrand, hasModel bool

	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "id")
			}
			id, err := domain.ParseCarID(s)
			if err != nil {
				return errors.Wrapf(err, "id %q", s)
			}
			car.ID, hasID = id, true
		case "brand":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "brand")
			}
			car.Brand, hasBrand = s, true
		case "model":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "model")
			}
			car.Model, hasModel = s, true
		case "year":
			if d.Next() == jx.Null {
				return errors.Wrap(d.Null(), "year")
			}
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "year")
			}
			car.Year = &s
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return domain.NewCar{}, errors.Wrap(err, "decode car")
	}

	switch {
	case !hasID:
		return domain.NewCar{}, errors.New("missing field id")
	case !hasBrand:
		return domain.NewCar{}, errors.New("missing field brand")
	case !hasModel:
		return domain.NewCar{}, errors.New("missing field model")
	}

	return car, nil
}
