package emu

// DriveStatus is the last access record of one disk drive. The owning
// context writes it on every access; the drives panel reads it and
// clears Sector itself once the drive has been idle long enough.
// A zero Sector means idle.
type DriveStatus struct {
	Track      uint8
	Sector     uint8
	Addr       uint16 // DMA address
	Write      bool
	Active     bool
	LastAccess uint32 // frame counter at last access
}
