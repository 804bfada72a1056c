package valid

// Field identifies a validated wire field.
type Field uint8

const (
	FieldPoolId Field = iota
	FieldLogOffset
	FieldTags
	FieldGrowthPortion
	FieldLogPrice
	FieldShares
	FieldCurve
	FieldHookData
	FieldAmountSpecified
	FieldCrossThreshold
	FieldDirection
	FieldHeight
	FieldSqrtPrice
)

// Rule says what happens when a field violates its bound.
type Rule uint8

const (
	// Fail aborts the whole call with a typed error.
	Fail Rule = iota
	// Clamp saturates the value at the bound and continues.
	Clamp
)

// policy is the per-field clamp-versus-fail table. Only the swap scalars
// saturate; every other violation is a hard failure.
var policy = map[Field]Rule{
	FieldPoolId:          Fail,
	FieldLogOffset:       Fail,
	FieldTags:            Fail,
	FieldGrowthPortion:   Fail,
	FieldLogPrice:        Fail,
	FieldShares:          Fail,
	FieldCurve:           Fail,
	FieldHookData:        Fail,
	FieldAmountSpecified: Clamp,
	FieldCrossThreshold:  Clamp,
	FieldDirection:       Clamp,
	FieldHeight:          Fail,
	FieldSqrtPrice:       Fail,
}

// PolicyFor returns the rule for a field.
func PolicyFor(f Field) Rule {
	return policy[f]
}
