package iomock

//go:generate go tool mockgen -destination=reader.go -package=iomock io Reader
