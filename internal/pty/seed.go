package pty

import (
	"strings"

	"github.com/pkg/errors"
)

// SeedNone disables the seed list.
const SeedNone = "none"

// SeedFortaleza is the default station directory for Fortaleza (CE, Brazil).
const SeedFortaleza = "fortaleza"

type seedStation struct {
	frequencyKHz uint32
	code         uint8
	name         string
}

var seeds = map[string][]seedStation{
	SeedFortaleza: {
		{79700, 10, "RADIO METROPOLITANA FM 79.7MHZ"},
		{87100, 10, "CEARA FM 87.1MHZ"},
		{88300, 20, "RADIO JERUSALEM FM"},
		{88900, 10, "JANGADEIRO FM"},
		{89900, 10, "89 FM 89.9 FM"},
		{90700, 10, "FORTALEZA FM"},
		{90300, 20, "RADIO UIRAPURU - REDE ALELUIA"},
		{91300, 20, "LOGOS FM"},
		{91700, 20, "SHALOM FM 91.7MHZ"},
		{92100, 20, "RADIO EFRAIM"},
		{92500, 10, "VERDINHA FM 92.5"},
		{92900, 10, "JOVEM PAN NEWS FORTALEZA"},
		{93500, 20, "CANAA FM 93.5"},
		{93900, 10, "FM 93 SEMPRE AO SEU LADO"},
		{94300, 10, "SOL FM 94.3 OFICIAL"},
		{94700, 10, "JOVEM PAN FORTALEZA FM 94.7"},
		{95100, 20, "LOGOS FM"},
		{95500, 10, "CBN O POVO"},
		{96100, 20, "DOMBOSCO FM 96,1"},
		{96700, 10, "ALECE FM 96.7MHZ"},
		{97100, 20, "RADIO MARIA BRASIL"},
		{97700, 10, "ANTENA 1 FM 97.7"},
		{98300, 20, "RADIO LIDER FM GOSPEL 98.3"},
		{99100, 10, "CIDADE FM 99.1"},
		{99900, 20, "REDE ALELUIA FM 99.9"},
		{100900, 20, "DEUS E AMOR FM 100.9"},
		{101300, 20, "NOVA RADIO CRISTA"},
		{101700, 10, "BANDNEWS FM 101.7"},
		{102300, 20, "TEMPLO CENTRAL FM 102.3"},
		{102700, 10, "RADIO BEACH PARK FM 102.7"},
		{103300, 10, "RADIO SENADO"},
		{103500, 20, "REDE SHALOM DE RADIO"},
		{103900, 10, "TEMPO FM 103.9 A SUA MELHOR ESTACAO."},
		{104300, 10, "EXPRESSO FM 104.3"},
		{105100, 20, "AD CIDADE FM 105.1MHZ"},
		{105700, 10, "ATLANTICO SUL FM 105.7"},
		{106500, 10, "NOVABRASIL FM 106.5"},
		{107500, 10, "MIX FM 107.5"},
		{107900, 10, "107.9MHZ RADIO UNIVERSITARIA FM 107.9MHZ"},
	},
}

// Seed returns the entries of the seed list with the given name. The
// returned slice is nil for SeedNone (or an empty name).
func Seed(name string) ([]Entry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == SeedNone {
		return nil, nil
	}

	stations, ok := seeds[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSeed, "seed '%s'", name)
	}

	out := make([]Entry, 0, len(stations))
	for _, s := range stations {
		out = append(out, Entry{
			FrequencyKHz: s.frequencyKHz,
			Tag:          PTYName(s.code),
			Code:         s.code,
			Name:         s.name,
		})
	}
	return out, nil
}
