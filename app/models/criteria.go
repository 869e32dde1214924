package models

// Validate rejects unknown enumeration values and negative thresholds.
func (c FilterCriteria) Validate() error {
	if err := validate.Struct(&c); err != nil {
		return fromValidator(err)
	}
	return nil
}

// IsAll reports whether an enumerated criterion is unconstrained.
func IsAll[T ~string](v T) bool {
	return v == "" || string(v) == Any
}
