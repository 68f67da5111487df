// Package msdf generates multi-channel signed distance fields from vector
// shapes built out of lines, quadratic and cubic Bezier curves, and
// elliptical arcs.
//
// MSDF (Multi-channel Signed Distance Field) is a technique that encodes a
// shape's boundary into separate RGB distance channels. Unlike traditional
// single-channel SDF, MSDF preserves sharp corners by assigning different
// channel combinations to the edges that meet at a corner, so the median of
// the channels reconstructs the true distance even where a single channel
// would round the corner off.
//
// # Pipeline
//
//  1. Build a Shape out of closed contours of edge segments.
//  2. Normalize validates the shape and fixes contour winding: outer
//     boundaries wind counter-clockwise, holes clockwise.
//  3. ColorEdges assigns channel combinations so that edges meeting at a
//     sharp corner never share an identical channel set.
//  4. Generate samples, per output pixel and per channel, the signed
//     pseudo-distance to the nearest edge carrying that channel.
//
// Distances are signed with the counter-clockwise-positive convention:
// positive values lie inside the filled region, negative outside.
//
// # Usage
//
//	shape := msdf.NewShapeBuilder().
//		MoveTo(msdf.Pt(0, 0)).
//		LineTo(msdf.Pt(1, 0)).LineTo(msdf.Pt(1, 1)).LineTo(msdf.Pt(0, 1)).
//		Close().Shape()
//
//	gen := msdf.NewGenerator(msdf.DefaultConfig())
//	field, err := gen.Generate(shape)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// field.At(x, y, channel) holds signed pseudo-distances in shape units.
//	// field.NRGBA() quantizes them into an RGB image for GPU upload.
//
// # Rendering
//
// Reconstruct the distance in a fragment shader with the channel median:
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
// # References
//
//   - msdfgen: https://github.com/Chlumsky/msdfgen
//   - MSDF paper: "Shape Decomposition for Multi-channel Distance Fields"
package msdf
