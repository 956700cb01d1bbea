package geo

// Coordinate is a fixed latitude/longitude pair for a municipality.
type Coordinate struct {
	Lat float64
	Lng float64
}

// MunicipalityIndex maps canonical municipality names to coordinates. It is
// reference configuration, not derived from data; municipalities absent from
// it simply cannot be plotted.
type MunicipalityIndex map[string]Coordinate

// DefaultMunicipalityIndex returns the coordinate index for the
// municipalities of Amazonas.
func DefaultMunicipalityIndex() MunicipalityIndex {
	return MunicipalityIndex{
		"Manaus":                    {Lat: -3.1190, Lng: -60.0217},
		"Parintins":                 {Lat: -2.6287, Lng: -56.7359},
		"Itacoatiara":               {Lat: -3.1386, Lng: -58.4449},
		"Manacapuru":                {Lat: -3.2903, Lng: -60.6216},
		"Coari":                     {Lat: -4.0856, Lng: -63.1414},
		"Tefé":                      {Lat: -3.3684, Lng: -64.7193},
		"Tabatinga":                 {Lat: -4.2316, Lng: -69.9383},
		"Maués":                     {Lat: -3.3839, Lng: -57.7187},
		"Humaitá":                   {Lat: -7.5117, Lng: -63.0328},
		"Lábrea":                    {Lat: -7.2585, Lng: -64.7977},
		"São Gabriel da Cachoeira":  {Lat: -0.1302, Lng: -67.0890},
		"Benjamin Constant":         {Lat: -4.3833, Lng: -70.0333},
		"Borba":                     {Lat: -4.3878, Lng: -59.5939},
		"Autazes":                   {Lat: -3.5853, Lng: -59.1256},
		"Nova Olinda do Norte":      {Lat: -3.8889, Lng: -59.0944},
		"Careiro":                   {Lat: -3.7681, Lng: -60.3692},
		"Iranduba":                  {Lat: -3.2847, Lng: -60.1858},
		"Presidente Figueiredo":     {Lat: -2.0342, Lng: -60.0234},
		"Rio Preto da Eva":          {Lat: -2.6981, Lng: -59.7019},
		"Novo Airão":                {Lat: -2.6361, Lng: -60.9436},
		"Santa Isabel do Rio Negro": {Lat: -0.4139, Lng: -65.0192},
		"Barcelos":                  {Lat: -0.9750, Lng: -62.9239},
		"Novo Aripuanã":             {Lat: -5.1258, Lng: -60.3797},
		"Apuí":                      {Lat: -7.1964, Lng: -59.8914},
		"Manicoré":                  {Lat: -5.8092, Lng: -61.3003},
		"Beruri":                    {Lat: -3.8983, Lng: -61.3733},
		"Anori":                     {Lat: -3.7461, Lng: -61.6442},
		"Codajás":                   {Lat: -3.8369, Lng: -62.0569},
		"Caapiranga":                {Lat: -3.3153, Lng: -61.2206},
		"Urucurituba":               {Lat: -3.1286, Lng: -58.1553},
		"Urucará":                   {Lat: -2.5364, Lng: -57.7600},
		"São Sebastião do Uatumã":   {Lat: -2.5714, Lng: -57.8714},
		"Itapiranga":                {Lat: -2.7489, Lng: -58.0219},
		"Silves":                    {Lat: -2.8392, Lng: -58.2092},
		"Barreirinha":               {Lat: -2.7939, Lng: -57.0703},
		"Boa Vista do Ramos":        {Lat: -2.9714, Lng: -57.5900},
		"Nhamundá":                  {Lat: -2.1864, Lng: -56.7131},
		"Fonte Boa":                 {Lat: -2.5142, Lng: -66.0919},
		"Japurá":                    {Lat: -1.8264, Lng: -66.5989},
		"Maraã":                     {Lat: -1.8561, Lng: -65.5806},
		"Uarini":                    {Lat: -2.9900, Lng: -65.1083},
		"Alvarães":                  {Lat: -3.2211, Lng: -64.8042},
		"Carauari":                  {Lat: -4.8828, Lng: -66.8958},
		"Ipixuna":                   {Lat: -7.0508, Lng: -71.6950},
		"Eirunepé":                  {Lat: -6.6619, Lng: -69.8742},
		"Envira":                    {Lat: -7.4325, Lng: -70.0225},
		"Guajará":                   {Lat: -7.5464, Lng: -72.5842},
		"Atalaia do Norte":          {Lat: -4.3703, Lng: -70.1917},
		"Santo Antônio do Içá":      {Lat: -3.1022, Lng: -67.9400},
		"Amaturá":                   {Lat: -3.3647, Lng: -68.1978},
		"São Paulo de Olivença":     {Lat: -3.3783, Lng: -68.8725},
		"Tonantins":                 {Lat: -2.8731, Lng: -67.8019},
		"Jutaí":                     {Lat: -2.7469, Lng: -66.7669},
		"Boca do Acre":              {Lat: -8.7525, Lng: -67.3983},
		"Pauini":                    {Lat: -7.7139, Lng: -66.9764},
		"Canutama":                  {Lat: -6.5342, Lng: -64.3836},
		"Tapauá":                    {Lat: -5.6261, Lng: -63.1825},
	}
}

// DefaultTribunalExclusions returns substrings identifying comarca labels
// that name courts or tribunals rather than municipalities. Matching is by
// substring: the labels embed arbitrary prefixes and suffixes.
func DefaultTribunalExclusions() []string {
	return []string{
		"Tribunal De Justiça",
		"Turmas Recursais dos Juizados Especiais",
		"Supremo Tribunal Federal",
		"Seção Judiciária do Amazonas",
		"Tribunal Regional Federal da 1ª Região",
		"Superior Tribunal De Justiça",
		"Tribunal De Justiça Militar",
		"Tribunal Regional Federal",
		"Tribunal Regional do Trabalho",
		"TST",
		"STJ",
		"STF",
		"TJM",
		"TRF",
		"TRT",
		"Comarca De Brasília",
	}
}
