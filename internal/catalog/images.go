package catalog

// placeholderImage is the terminal fallback when no better image resolves.
const placeholderImage = "/images/placeholder.png"

// slotImages maps slot types to their bundled default image.
// Storage, PSU and cooler reuse neighbouring images until dedicated
// assets exist on the backend.
var slotImages = map[SlotType]string{
	SlotCPU:         "/images/cpu.png",
	SlotGPU:         "/images/gpu.png",
	SlotMotherboard: "/images/motherboard.png",
	SlotRAM:         "/images/ram.png",
	SlotStorage:     "/images/case.png",
	SlotPSU:         "/images/case.png",
	SlotCase:        "/images/case.png",
	SlotCooler:      "/images/cpu.png",
}

// DefaultImage returns the slot's bundled image, or the generic
// placeholder for slots outside the closed set.
func DefaultImage(slot SlotType) string {
	if img, ok := slotImages[slot]; ok {
		return img
	}
	return placeholderImage
}

// ImageRef resolves a component's display image through the fallback
// chain: explicit field → slot default → placeholder. A render-time load
// failure advances to the fallback exactly once; further failures stick
// at the current reference instead of looping.
type ImageRef struct {
	current  string
	fallback string
	failed   bool
}

// ResolveImage builds the fallback pair for a component. A component with
// no explicit image starts directly at its slot fallback.
func ResolveImage(c Component) *ImageRef {
	fallback := DefaultImage(c.Slot)
	if c.Image == "" {
		return &ImageRef{current: fallback, fallback: fallback, failed: true}
	}
	return &ImageRef{current: c.Image, fallback: fallback}
}

// Current returns the image reference to render.
func (r *ImageRef) Current() string {
	return r.current
}

// MarkFailed records a load failure for the current reference. The first
// failure switches to the fallback and reports true; any later call is a
// no-op reporting false.
func (r *ImageRef) MarkFailed() bool {
	if r.failed {
		return false
	}
	r.failed = true
	r.current = r.fallback
	return true
}
