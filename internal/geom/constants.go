package geom

const (
	// Tiny is the threshold below which computed values (determinants,
	// discriminants, squared lengths) are treated as zero.
	Tiny = 1.0e-8

	// XYRes is the ground resolution of stored positions in metres (one micron).
	XYRes = 1.0e-6

	micronsPerMetre = 1.0e6
)
