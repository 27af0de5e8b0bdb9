package region

import (
	"encoding/json"
	"strings"
)

// Region is an operational zone: a Distrito Federal administrative region or a
// Goiás municipality. The value is the display label used across the API.
type Region string

// Partition is the coarse travel-time class of a region.
type Partition string

const (
	Metro    Partition = "METRO"
	Outlying Partition = "OUTLYING"
)

type State string

const (
	StateDF State = "DF"
	StateGO State = "GO"
)

// Distrito Federal
const (
	PlanoPiloto       Region = "Plano Piloto"
	AguasClaras       Region = "Águas Claras"
	Arniqueira        Region = "Arniqueira"
	Brazlandia        Region = "Brazlândia"
	Candangolandia    Region = "Candangolândia"
	Ceilandia         Region = "Ceilândia"
	Cruzeiro          Region = "Cruzeiro"
	Fercal            Region = "Fercal"
	Gama              Region = "Gama"
	Guara             Region = "Guará"
	Itapoa            Region = "Itapoã"
	JardimBotanico    Region = "Jardim Botânico"
	LagoNorte         Region = "Lago Norte"
	LagoSul           Region = "Lago Sul"
	NucleoBandeirante Region = "Núcleo Bandeirante"
	Paranoa           Region = "Paranoá"
	ParkWay           Region = "Park Way"
	PlanaltinaDF      Region = "Planaltina (DF)"
	RecantoEmas       Region = "Recanto das Emas"
	RiachoFundoI      Region = "Riacho Fundo I"
	RiachoFundoII     Region = "Riacho Fundo II"
	Samambaia         Region = "Samambaia"
	SantaMaria        Region = "Santa Maria"
	SaoSebastiao      Region = "São Sebastião"
	SIA               Region = "SIA"
	Sobradinho        Region = "Sobradinho"
	SobradinhoII      Region = "Sobradinho II"
	SolNascente       Region = "Sol Nascente / Pôr do Sol"
	SudoesteOctogonal Region = "Sudoeste / Octogonal"
	Taguatinga        Region = "Taguatinga"
	Varjao            Region = "Varjão"
	VicentePires      Region = "Vicente Pires"
)

// Goiás
const (
	AguasLindas            Region = "Águas Lindas de Goiás (GO)"
	Alexania               Region = "Alexânia (GO)"
	CidadeOcidental        Region = "Cidade Ocidental (GO)"
	Cocalzinho             Region = "Cocalzinho de Goiás (GO)"
	Corumba                Region = "Corumbá de Goiás (GO)"
	Cristalina             Region = "Cristalina (GO)"
	Formosa                Region = "Formosa (GO)"
	Luziania               Region = "Luziânia (GO)"
	Mimoso                 Region = "Mimoso de Goiás (GO)"
	NovoGama               Region = "Novo Gama (GO)"
	PadreBernardo          Region = "Padre Bernardo (GO)"
	Pirenopolis            Region = "Pirenópolis (GO)"
	PlanaltinaGO           Region = "Planaltina (GO)"
	SantoAntonioDescoberto Region = "Santo Antônio do Descoberto (GO)"
	Valparaiso             Region = "Valparaíso de Goiás (GO)"
	Goiania                Region = "Goiânia (GO)"
	AparecidaGoiania       Region = "Aparecida de Goiânia (GO)"
	Anapolis               Region = "Anápolis (GO)"
	RioVerde               Region = "Rio Verde (GO)"
	Itumbiara              Region = "Itumbiara (GO)"
	Jatai                  Region = "Jataí (GO)"
	CaldasNovas            Region = "Caldas Novas (GO)"
	Trindade               Region = "Trindade (GO)"
)

// Info tags a region with its partition and state. The tag lives next to the
// constant so the partition never depends on catalogue order.
type Info struct {
	Region    Region    `json:"region"`
	Partition Partition `json:"partition"`
	State     State     `json:"state"`
}

var catalog = []Info{
	{PlanoPiloto, Metro, StateDF},
	{AguasClaras, Metro, StateDF},
	{Arniqueira, Metro, StateDF},
	{Brazlandia, Metro, StateDF},
	{Candangolandia, Metro, StateDF},
	{Ceilandia, Metro, StateDF},
	{Cruzeiro, Metro, StateDF},
	{Fercal, Metro, StateDF},
	{Gama, Metro, StateDF},
	{Guara, Metro, StateDF},
	{Itapoa, Metro, StateDF},
	{JardimBotanico, Metro, StateDF},
	{LagoNorte, Metro, StateDF},
	{LagoSul, Metro, StateDF},
	{NucleoBandeirante, Metro, StateDF},
	{Paranoa, Metro, StateDF},
	{ParkWay, Metro, StateDF},
	{PlanaltinaDF, Metro, StateDF},
	{RecantoEmas, Metro, StateDF},
	{RiachoFundoI, Metro, StateDF},
	{RiachoFundoII, Metro, StateDF},
	{Samambaia, Metro, StateDF},
	{SantaMaria, Metro, StateDF},
	{SaoSebastiao, Metro, StateDF},
	{SIA, Metro, StateDF},
	{Sobradinho, Metro, StateDF},
	{SobradinhoII, Metro, StateDF},
	{SolNascente, Metro, StateDF},
	{SudoesteOctogonal, Metro, StateDF},
	{Taguatinga, Metro, StateDF},
	{Varjao, Metro, StateDF},
	{VicentePires, Metro, StateDF},

	{AguasLindas, Outlying, StateGO},
	{Alexania, Outlying, StateGO},
	{CidadeOcidental, Outlying, StateGO},
	{Cocalzinho, Outlying, StateGO},
	{Corumba, Outlying, StateGO},
	{Cristalina, Outlying, StateGO},
	{Formosa, Outlying, StateGO},
	{Luziania, Outlying, StateGO},
	{Mimoso, Outlying, StateGO},
	{NovoGama, Outlying, StateGO},
	{PadreBernardo, Outlying, StateGO},
	{Pirenopolis, Outlying, StateGO},
	{PlanaltinaGO, Outlying, StateGO},
	{SantoAntonioDescoberto, Outlying, StateGO},
	{Valparaiso, Outlying, StateGO},
	{Goiania, Outlying, StateGO},
	{AparecidaGoiania, Outlying, StateGO},
	{Anapolis, Outlying, StateGO},
	{RioVerde, Outlying, StateGO},
	{Itumbiara, Outlying, StateGO},
	{Jatai, Outlying, StateGO},
	{CaldasNovas, Outlying, StateGO},
	{Trindade, Outlying, StateGO},
}

var index = func() map[Region]Info {
	m := make(map[Region]Info, len(catalog))
	for _, info := range catalog {
		m[info.Region] = info
	}
	return m
}()

// Parse resolves a display label into a Region.
func Parse(s string) (Region, error) {
	r := Region(strings.TrimSpace(s))
	if !r.Valid() {
		return "", ErrUnknownRegion
	}
	return r, nil
}

func (r Region) Valid() bool {
	_, ok := index[r]
	return ok
}

// Partition returns the region's travel partition. Unknown values are treated
// as Outlying, the slower class.
func (r Region) Partition() Partition {
	if info, ok := index[r]; ok {
		return info.Partition
	}
	return Outlying
}

func (r Region) IsMetro() bool {
	return r.Partition() == Metro
}

func (r Region) State() State {
	return index[r].State
}

func (r Region) String() string {
	return string(r)
}

func (r *Region) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// All returns the catalogue in declaration order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// ByState lists the regions of a single state.
func ByState(state State) []Region {
	var out []Region
	for _, info := range catalog {
		if info.State == state {
			out = append(out, info.Region)
		}
	}
	return out
}

// Contains reports whether r is in the set.
func Contains(set []Region, r Region) bool {
	for _, item := range set {
		if item == r {
			return true
		}
	}
	return false
}

func (s State) Valid() bool {
	return s == StateDF || s == StateGO
}
