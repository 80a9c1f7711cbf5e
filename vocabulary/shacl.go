package vocabulary

// SHACL core terms consumed by the shape loader and constraint engine.
const (
	ShNodeShape     = SHACL + "NodeShape"
	ShPropertyShape = SHACL + "PropertyShape"

	ShTargetClass   = SHACL + "targetClass"
	ShTargetNode    = SHACL + "targetNode"
	ShProperty      = SHACL + "property"
	ShPath          = SHACL + "path"
	ShInversePath   = SHACL + "inversePath"
	ShAlternative   = SHACL + "alternativePath"
	ShDeactivated   = SHACL + "deactivated"
	ShSeverity      = SHACL + "severity"
	ShMessage       = SHACL + "message"
	ShName          = SHACL + "name"
	ShDescription   = SHACL + "description"
	ShDatatype      = SHACL + "datatype"
	ShNodeKind      = SHACL + "nodeKind"
	ShMinCount      = SHACL + "minCount"
	ShMaxCount      = SHACL + "maxCount"
	ShMinLength     = SHACL + "minLength"
	ShMaxLength     = SHACL + "maxLength"
	ShPattern       = SHACL + "pattern"
	ShFlags         = SHACL + "flags"
	ShClass         = SHACL + "class"
	ShIn            = SHACL + "in"
	ShHasValue      = SHACL + "hasValue"
	ShLanguageIn    = SHACL + "languageIn"
	ShUniqueLang    = SHACL + "uniqueLang"
	ShOr            = SHACL + "or"
	ShAnd           = SHACL + "and"
	ShNot           = SHACL + "not"
	ShNode          = SHACL + "node"

	ShViolation = SHACL + "Violation"
	ShWarning   = SHACL + "Warning"
	ShInfo      = SHACL + "Info"

	ShIRI            = SHACL + "IRI"
	ShBlankNode      = SHACL + "BlankNode"
	ShLiteral        = SHACL + "Literal"
	ShBlankNodeOrIRI = SHACL + "BlankNodeOrIRI"
	ShIRIOrLiteral   = SHACL + "IRIOrLiteral"
	ShBlankOrLiteral = SHACL + "BlankNodeOrLiteral"
)

// SHACL constraint component IRIs reported on violations.
const (
	ShMinCountComponent   = SHACL + "MinCountConstraintComponent"
	ShMaxCountComponent   = SHACL + "MaxCountConstraintComponent"
	ShDatatypeComponent   = SHACL + "DatatypeConstraintComponent"
	ShNodeKindComponent   = SHACL + "NodeKindConstraintComponent"
	ShMinLengthComponent  = SHACL + "MinLengthConstraintComponent"
	ShMaxLengthComponent  = SHACL + "MaxLengthConstraintComponent"
	ShPatternComponent    = SHACL + "PatternConstraintComponent"
	ShClassComponent      = SHACL + "ClassConstraintComponent"
	ShInComponent         = SHACL + "InConstraintComponent"
	ShHasValueComponent   = SHACL + "HasValueConstraintComponent"
	ShLanguageInComponent = SHACL + "LanguageInConstraintComponent"
	ShUniqueLangComponent = SHACL + "UniqueLangConstraintComponent"
	ShOrComponent         = SHACL + "OrConstraintComponent"
	ShAndComponent        = SHACL + "AndConstraintComponent"
	ShNotComponent        = SHACL + "NotConstraintComponent"
	ShNodeComponent       = SHACL + "NodeConstraintComponent"
)
