package schema

// Kind describes whether a [Node] is a file or a directory.
type Kind int

const (
	// KindFile is a leaf [Node] that never owns children.
	KindFile Kind = iota

	// KindDirectory is a [Node] capable of owning children.
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}
