package jpeg

// Chroma up/downsampling, per §4.12. Decode-side replication and
// encode-side box averaging both operate on samplePlane (mcu.go), a flat
// per-component sample array that carries its own stride so
// differently-subsampled components can be stored independently.

// upsamplePlane replicates src (sampled at ratio Hmax/H : Vmax/V relative
// to the luma plane) up to full resolution using nearest-neighbor
// replication, the only ratio §4.12 requires support for.
func upsamplePlane(src *samplePlane, hRatio, vRatio int, outWidth, outHeight int) samplePlane {
	out := newSamplePlane(outWidth, outHeight)
	for y := 0; y < outHeight; y++ {
		sy := y / vRatio
		if sy >= src.height {
			sy = src.height - 1
		}
		for x := 0; x < outWidth; x++ {
			sx := x / hRatio
			if sx >= src.width {
				sx = src.width - 1
			}
			out.set(x, y, src.at(sx, sy))
		}
	}
	return out
}

// downsamplePlane reduces src by (hRatio, vRatio) using a box filter: a
// 2x2 average when both ratios are 2 (4:2:0), a 1x2 horizontal average when
// only hRatio is 2 (4:2:2), and a direct copy at 1x1 (4:4:4).
func downsamplePlane(src *samplePlane, hRatio, vRatio int) samplePlane {
	outWidth := ceilDiv(src.width, hRatio)
	outHeight := ceilDiv(src.height, vRatio)
	out := newSamplePlane(outWidth, outHeight)

	for y := 0; y < outHeight; y++ {
		for x := 0; x < outWidth; x++ {
			var sum, count int
			for dy := 0; dy < vRatio; dy++ {
				sy := y*vRatio + dy
				if sy >= src.height {
					continue
				}
				for dx := 0; dx < hRatio; dx++ {
					sx := x*hRatio + dx
					if sx >= src.width {
						continue
					}
					sum += int(src.at(sx, sy))
					count++
				}
			}
			out.set(x, y, uint8((sum+count/2)/count))
		}
	}
	return out
}
