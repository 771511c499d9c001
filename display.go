package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Displays a compression report in a formatted way
func DisplayReport(w io.Writer, r Report) {
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "File: %s\n", r.Name)
	fmt.Fprintf(w, "Original Size: \t\t%s \t bytes\n", FormatCount(r.OriginalSize))
	fmt.Fprintf(w, "Compressed Size: \t%s \t bytes\n", FormatCount(r.CompressedSize))

	fmt.Fprintf(w, "Compression Ratio: \t%.4f\n", r.Ratio())
	fmt.Fprintf(w, "Compression Speed: \t%s \t bytes/second\n", FormatRate(r.CompressSpeed()))
	fmt.Fprintf(w, "Decompression Speed: \t%s \t bytes/second\n", FormatRate(r.DecompressSpeed()))
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintln(w)
}

// Displays the statistics of one received frame
func DisplayFrame(w io.Writer, info *StreamInfo, f FrameStats) {
	total := 0
	if info != nil {
		total = info.Chunks
	}

	fmt.Fprintf(w, "  [%d/%d] %s -> %s bytes (ratio %.4f) in %s\n",
		f.Index+1, total,
		FormatCount(int64(f.CompressedSize)), FormatCount(int64(f.DecodedSize)),
		Ratio(int64(f.DecodedSize), int64(f.CompressedSize)), f.Elapsed)
}

// Displays the announcement of an incoming stream
func DisplayStreamInfo(w io.Writer, info *StreamInfo) {
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Receiving %s (%s bytes, %d frames, %s codes)\n",
		info.Name, FormatCount(info.Size), info.Chunks, info.Format)
	fmt.Fprintln(w, strings.Repeat("=", 50))
}

// Formats an integer with thousands separators
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	return b.String()
}

// Formats a rate with thousands separators and four decimals
func FormatRate(v float64) string {
	whole := int64(v)
	frac := fmt.Sprintf("%.4f", v-float64(whole))
	// Rounding can carry into the integer part
	if strings.HasPrefix(frac, "1") {
		whole++
		frac = "0.0000"
	}
	return FormatCount(whole) + strings.TrimPrefix(frac, "0")
}

// Prints the listener welcome message
func PrintWelcomeMessage(w io.Writer) {
	fmt.Fprintln(w, "LZW stream listener started. Press Ctrl+C to stop.")
	fmt.Fprintln(w, "Waiting for frames...")
	fmt.Fprintln(w)
}
