//go:build !amd64 && !arm64

package lanes

func init() {
	// No native paths on other targets; the software codecs are used for
	// everything.
	capsName = "generic"
}
