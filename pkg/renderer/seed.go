package renderer

// RowSeed derives the RNG seed for image row j from the render seed. Rows get
// independent streams so the image does not depend on how rows are scheduled.
func RowSeed(seed int64, row int) int64 {
	return int64(splitmix64(uint64(seed) ^ splitmix64(uint64(row))))
}

// splitmix64 is the finalizer from Steele et al., "Fast Splittable
// Pseudorandom Number Generators"
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
