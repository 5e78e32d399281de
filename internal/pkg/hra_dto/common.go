package hra_dto

// ErrorEnvelope is the persistence service's error body. Message carries the
// upstream diagnostic; it is never shown to end users directly.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// enumMapping translates between the local enumeration vocabulary and the
// wire vocabulary of the persistence service. Every section declares its
// mappings once and uses them symmetrically on the commit and rehydration
// paths, so values always round-trip.
type enumMapping struct {
	toWire  map[string]string
	toLocal map[string]string
}

func newEnumMapping(localToWire map[string]string) enumMapping {
	m := enumMapping{
		toWire:  localToWire,
		toLocal: make(map[string]string, len(localToWire)),
	}
	for local, wire := range localToWire {
		m.toLocal[wire] = local
	}
	return m
}

// Wire returns the wire form of a local value. Unmapped values pass through
// unchanged so free-text fields survive translation.
func (m enumMapping) Wire(local string) string {
	if wire, ok := m.toWire[local]; ok {
		return wire
	}
	return local
}

// Local returns the local form of a wire value. Unknown or legacy wire
// values fall back to the field's default.
func (m enumMapping) Local(wire, fallback string) string {
	if local, ok := m.toLocal[wire]; ok {
		return local
	}
	return fallback
}

func (m enumMapping) WireList(locals []string) []string {
	if len(locals) == 0 {
		return nil
	}
	wires := make([]string, 0, len(locals))
	for _, local := range locals {
		wires = append(wires, m.Wire(local))
	}
	return wires
}

// LocalList drops unknown wire values instead of defaulting them; a list
// field's default is simply the empty list.
func (m enumMapping) LocalList(wires []string) []string {
	if len(wires) == 0 {
		return nil
	}
	locals := make([]string, 0, len(wires))
	for _, wire := range wires {
		if local, ok := m.toLocal[wire]; ok {
			locals = append(locals, local)
		}
	}
	return locals
}

// yesNo is shared by most sections.
var yesNo = newEnumMapping(map[string]string{
	"yes": "Yes",
	"no":  "No",
})

// habitFrequency is shared by the eating and drinking sections.
var habitFrequency = newEnumMapping(map[string]string{
	"never":      "Never",
	"occasional": "Occasionally",
	"weekly":     "Weekly",
	"daily":      "Daily",
})

// illnessConditions is shared by the presenting-illness, past-history and
// hereditary sections.
var illnessConditions = newEnumMapping(map[string]string{
	"diabetes":     "Diabetes",
	"hypertension": "Hypertension",
	"asthma":       "Asthma",
	"thyroid":      "Thyroid Disorder",
	"heartDisease": "Heart Disease",
	"cancer":       "Cancer",
	"none":         "None",
})
