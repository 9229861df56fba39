package pact

// ResolveCharacterizationFactors picks the headline characterization factors
// and the IPCC source list for a set of requested assessment reports.
//
// An empty request means AR5. Otherwise the sources follow the request order
// (duplicates dropped) and the headline is AR5 when requested, AR6 if not.
func ResolveCharacterizationFactors(
	requested []CharacterizationFactors,
) (CharacterizationFactors, IpccCharacterizationFactorsSources, error) {
	if len(requested) == 0 {
		return AR5, IpccCharacterizationFactorsSources{IpccCharacterizationFactorsSource(AR5)}, nil
	}

	headline := AR6
	sources := make(IpccCharacterizationFactorsSources, 0, len(requested))
	for i, f := range dedupe(requested) {
		if err := f.Validate(); err != nil {
			return "", nil, Within(indexField("characterizationFactors", i), err)
		}
		if f == AR5 {
			headline = AR5
		}
		sources = append(sources, IpccCharacterizationFactorsSource(f))
	}
	return headline, sources, nil
}
