package survey

// SelectExportable keeps the records stroked in the export color, restricted
// to one layer when layer is not empty.
func SelectExportable(records []PolylineRecord, color Color, layer string) ([]PolylineRecord, error) {
	var result []PolylineRecord
	for _, record := range records {
		if record.Stroke != color {
			continue
		}
		if layer != "" && record.Layer != layer {
			continue
		}
		result = append(result, record)
	}
	if len(result) == 0 {
		detail := "no lines in the export color"
		if layer != "" {
			detail += " on layer " + layer
		}
		return nil, newError(NoExportableGeometry, "", "%s", detail)
	}
	return result, nil
}

// BuildTraverses turns each record into a traverse, with one station per
// point and one leg between each consecutive pair of points.
func BuildTraverses(records []PolylineRecord, basis Basis, northOffset float64) ([]Traverse, error) {
	traverses := make([]Traverse, 0, len(records))
	// Keyed by the name the traverse is written under
	seen := make(map[string]string, len(records))
	for _, record := range records {
		if record.Curved {
			if origin := record.Origin(); origin != record.ID {
				return nil, newError(CurvedSegment, origin, "subpath %s is not made of straight segments", record.ID)
			}
			return nil, newError(CurvedSegment, record.ID, "exported lines must be straight segments only")
		}
		name := SurveyName(record.ID)
		if first, ok := seen[name]; ok {
			if first == record.ID {
				return nil, newError(DuplicateTraverse, record.ID, "station names would collide")
			}
			return nil, newError(DuplicateTraverse, record.ID, "survey name %s is also used by %q", name, first)
		}
		seen[name] = record.ID
		traverses = append(traverses, buildTraverse(record, basis, northOffset))
	}
	return traverses, nil
}

func buildTraverse(record PolylineRecord, basis Basis, northOffset float64) Traverse {
	t := Traverse{
		ID:       record.ID,
		Layer:    record.Layer,
		Stations: make([]Station, len(record.Points)),
	}
	for i, p := range record.Points {
		t.Stations[i] = Station{Traverse: record.ID, Index: i, Position: p}
	}
	if len(record.Points) < 2 {
		return t
	}

	t.Legs = make([]Leg, 0, len(record.Points)-1)
	for i := 1; i < len(t.Stations); i++ {
		from, to := t.Stations[i-1], t.Stations[i]
		d, dl := Displacement(from.Position, to.Position)
		t.Legs = append(t.Legs, Leg{
			From:    from.LocalID(),
			To:      to.LocalID(),
			Tape:    dl * basis.ScaleFactor,
			Compass: NormalizeBearing(northOffset + basis.Bearing(d)),
		})
	}
	return t
}

// AllStations flattens the traverses' stations, keeping traverse order and
// point order.
func AllStations(traverses []Traverse) []Station {
	var stations []Station
	for _, t := range traverses {
		stations = append(stations, t.Stations...)
	}
	return stations
}
