package sysstat

// FSID identifies a mounted filesystem instance. Two paths share an FSID
// exactly when they live on the same filesystem.
type FSID struct {
	Fsid [2]int32
	Dev  uint64
}

// FSStat is the subset of statfs the panel uses.
type FSStat struct {
	// Blocks is the total number of data blocks.
	Blocks uint64
	// Available counts blocks free for unprivileged users (f_bavail), never f_bfree.
	Available uint64
	BlockSize uint64
	ID        FSID
}

// SizeBytes returns total capacity in bytes.
func (s FSStat) SizeBytes() uint64 {
	return s.Blocks * s.BlockSize
}

// AvailableBytes returns the bytes a non-root user could still write.
func (s FSStat) AvailableBytes() uint64 {
	return s.Available * s.BlockSize
}

// FS queries real filesystems.
type FS struct{}

// NewFS returns the OS filesystem source.
func NewFS() FS {
	return FS{}
}
