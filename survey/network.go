package survey

// Options controls one conversion run.
type Options struct {
	// Real length of the scale bar
	ScaleLength float64
	// Bearing of the orientation line, in degrees
	NorthOffset float64
	// Stations closer than this (in real units) are equated
	Tolerance float64
	Roles     Roles
	// Restrict exported traverses to this layer, unless empty
	Layer string
}

// Network is everything needed to write a survey file.
type Network struct {
	Options   Options
	Basis     Basis
	Traverses []Traverse
	Equates   []EquatePair
	Exports   ExportSet
}

// Build runs the whole conversion: calibration, traverse building, equate
// detection and export resolution. Each stage consumes the previous stage's
// result. The first error aborts the run.
func Build(records []PolylineRecord, opts Options) (*Network, error) {
	basis, err := Calibrate(records, opts.Roles, opts.ScaleLength)
	if err != nil {
		return nil, err
	}

	exportable, err := SelectExportable(records, opts.Roles.Export, opts.Layer)
	if err != nil {
		return nil, err
	}

	traverses, err := BuildTraverses(exportable, basis, opts.NorthOffset)
	if err != nil {
		return nil, err
	}

	equates := DetectEquates(AllStations(traverses), opts.Tolerance, basis.ScaleFactor)

	return &Network{
		Options:   opts,
		Basis:     basis,
		Traverses: traverses,
		Equates:   equates,
		Exports:   ResolveExports(equates, TraverseIDs(traverses)),
	}, nil
}

func TraverseIDs(traverses []Traverse) []string {
	ids := make([]string, len(traverses))
	for i, t := range traverses {
		ids[i] = t.ID
	}
	return ids
}

func (n *Network) StationCount() int {
	count := 0
	for _, t := range n.Traverses {
		count += len(t.Stations)
	}
	return count
}

func (n *Network) LegCount() int {
	count := 0
	for _, t := range n.Traverses {
		count += len(t.Legs)
	}
	return count
}
