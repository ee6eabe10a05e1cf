package parser

// CountVariants estimates the number of purchasable variants from the sizes
// of the color and volume option groups. Maximum, not sum: when both groups
// are present they are assumed to describe the same variant axis.
func CountVariants(colorOptions, volumeOptions int) int {
	if colorOptions > volumeOptions {
		return colorOptions
	}
	return volumeOptions
}
