// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggraster paints rendered figures with the gogpu/gg software
// rasterizer. It resolves a figure's screen-space drawables into a
// gg.Context, which can then be read back as an image or encoded to PNG.
//
// The backend is a pure consumer of the core: it never touches figure or
// axes models, only the RenderedFigure snapshot a render pass produced.
package ggraster
