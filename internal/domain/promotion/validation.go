package promotion

// Reason is the closed set of validation failure reasons. Callers map these
// to user-facing messages; the engine never raises them as errors.
type Reason string

const (
	ReasonNotFound             Reason = "not_found"
	ReasonInactive             Reason = "inactive"
	ReasonNotYetValid          Reason = "not_yet_valid"
	ReasonExpired              Reason = "expired"
	ReasonUsageLimitReached    Reason = "usage_limit_reached"
	ReasonBelowMinimumPurchase Reason = "below_minimum_purchase"
	ReasonIneligible           Reason = "ineligible"
	ReasonNotApplicable        Reason = "not_applicable"
	ReasonCustomerLimitReached Reason = "customer_limit_reached"
)

func (r Reason) String() string {
	return string(r)
}

type ValidationResult struct {
	valid  bool
	reason Reason
}

func Valid() ValidationResult {
	return ValidationResult{valid: true}
}

func Invalid(reason Reason) ValidationResult {
	return ValidationResult{reason: reason}
}

func (v ValidationResult) IsValid() bool {
	return v.valid
}

// Reason returns the failure reason, empty for a valid result.
func (v ValidationResult) Reason() Reason {
	return v.reason
}
