package horizon

const effectsPath = "/effects"

// Effects starts a query of all effects.
func Effects() ListBuilder[Effect] {
	return newListBuilder[Effect](effectsPath)
}

// EffectsForOperation starts a query of the effects of one operation.
func EffectsForOperation(operationID string) (ListBuilder[Effect], error) {
	path, err := scopedPath(operationsPath, "operation_id", operationID, "effects", validateNumericID)
	if err != nil {
		return ListBuilder[Effect]{}, err
	}

	return newListBuilder[Effect](path), nil
}
