package settings

import "github.com/srad-secure/srad-backend-go/internal/pkg/validator"

type UpdateParameterRequest struct {
	Key   Param   `json:"key"`
	Value float64 `json:"value"`
}

func (r *UpdateParameterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(string(r.Key)) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "key is required"})
	}
	if !validator.IsFinite(r.Value) {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "value must be a finite number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ParameterResponse struct {
	Key      Param   `json:"key"`
	Previous float64 `json:"previous"`
	Value    float64 `json:"value"`
}
