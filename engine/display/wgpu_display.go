package display

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuDisplay struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat        wgpu.TextureFormat
	presentMode          PresentMode
	filter               Filter
	forceFallbackAdapter bool
	clearColor           wgpu.Color

	surfaceWidth  int
	surfaceHeight int
	configured    bool

	pipeline        *wgpu.RenderPipeline
	bindGroupLayout *wgpu.BindGroupLayout
	sampler         *wgpu.Sampler

	// Frame texture state, recreated when the frame size changes.
	texture       *wgpu.Texture
	textureView   *wgpu.TextureView
	bindGroup     *wgpu.BindGroup
	textureWidth  int
	textureHeight int
	staging       []uint8
}

var _ Display = &wgpuDisplay{}

// NewDisplay creates a WebGPU display on the surface described by surfaceDescriptor.
// The surface is not configured until Configure is called.
//
// Parameters:
//   - surfaceDescriptor: the platform surface, typically window.Window.SurfaceDescriptor()
//   - options: optional functional options to configure the display
//
// Returns:
//   - Display: the new display
//   - error: an error if no adapter or device is available or the blit pipeline cannot be built
func NewDisplay(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...DisplayBuilderOption) (Display, error) {
	if surfaceDescriptor == nil {
		return nil, errors.New("display requires a surface descriptor")
	}

	d := &wgpuDisplay{
		presentMode: PresentModeVSync,
		filter:      FilterNearest,
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}
	for _, opt := range options {
		opt(d)
	}

	d.instance = wgpu.CreateInstance(nil)
	d.surface = d.instance.CreateSurface(surfaceDescriptor)

	a, err := d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: d.forceFallbackAdapter,
		CompatibleSurface:    d.surface,
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	d.adapter = a

	dev, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Display Device",
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	d.device = dev
	d.queue = dev.GetQueue()

	capabilities := d.surface.GetCapabilities(d.adapter)
	if len(capabilities.Formats) == 0 {
		d.Release()
		return nil, errors.New("surface reports no supported formats")
	}
	d.surfaceFormat = capabilities.Formats[0]

	if err := d.createPipeline(); err != nil {
		d.Release()
		return nil, err
	}
	return d, nil
}

// createPipeline builds the sampler, bind group layout and render pipeline for the blit shader.
func (d *wgpuDisplay) createPipeline() error {
	module, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Blit Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: blitShaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("create blit shader: %w", err)
	}
	defer module.Release()

	filter := filterModeFor(d.filter)
	d.sampler, err = d.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Frame Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     filter,
		MinFilter:     filter,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("create frame sampler: %w", err)
	}

	texEntry := wgpu.BindGroupLayoutEntry{Binding: 0, Visibility: wgpu.ShaderStageFragment}
	texEntry.Texture.SampleType = wgpu.TextureSampleTypeFloat
	texEntry.Texture.ViewDimension = wgpu.TextureViewDimension2D
	samplerEntry := wgpu.BindGroupLayoutEntry{Binding: 1, Visibility: wgpu.ShaderStageFragment}
	samplerEntry.Sampler.Type = wgpu.SamplerBindingTypeFiltering

	d.bindGroupLayout, err = d.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Frame Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{texEntry, samplerEntry},
	})
	if err != nil {
		return fmt.Errorf("create frame bind group layout: %w", err)
	}

	layout, err := d.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Blit Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{d.bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("create blit pipeline layout: %w", err)
	}
	defer layout.Release()

	d.pipeline, err = d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Blit Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create blit pipeline: %w", err)
	}
	return nil
}

func (d *wgpuDisplay) Configure(width, height int) {
	d.surfaceWidth = width
	d.surfaceHeight = height
	if width <= 0 || height <= 0 {
		d.configured = false
		return
	}

	capabilities := d.surface.GetCapabilities(d.adapter)
	d.surface.Configure(d.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      d.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: presentModeFor(d.presentMode),
		AlphaMode:   capabilities.AlphaModes[0],
	})
	d.configured = true
}

func (d *wgpuDisplay) SetPresentMode(mode PresentMode) {
	d.presentMode = mode
}

// ensureFrameTexture recreates the frame texture and its bind group when the frame size changes.
func (d *wgpuDisplay) ensureFrameTexture(width, height int) error {
	if d.texture != nil && d.textureWidth == width && d.textureHeight == height {
		return nil
	}
	d.releaseFrameTexture()

	tex, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "Frame Texture",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		Format:        frameTextureFormat(d.surfaceFormat),
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return fmt.Errorf("create frame texture: %w", err)
	}
	d.texture = tex

	d.textureView, err = tex.CreateView(nil)
	if err != nil {
		d.releaseFrameTexture()
		return fmt.Errorf("create frame texture view: %w", err)
	}

	d.bindGroup, err = d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Frame Bind Group",
		Layout: d.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: d.textureView},
			{Binding: 1, Sampler: d.sampler},
		},
	})
	if err != nil {
		d.releaseFrameTexture()
		return fmt.Errorf("create frame bind group: %w", err)
	}

	d.textureWidth = width
	d.textureHeight = height
	return nil
}

func (d *wgpuDisplay) Present(buf *renderer.PixelBuffer) error {
	if !d.configured || buf == nil || buf.Width <= 0 || buf.Height <= 0 {
		return nil
	}
	if err := d.ensureFrameTexture(buf.Width, buf.Height); err != nil {
		return err
	}

	d.staging = buf.RGBA(d.staging)
	d.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  d.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		d.staging,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(buf.Width * 4),
			RowsPerImage: uint32(buf.Height),
		},
		&wgpu.Extent3D{
			Width:              uint32(buf.Width),
			Height:             uint32(buf.Height),
			DepthOrArrayLayers: 1,
		},
	)

	surfaceTexture, err := d.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: d.clearColor,
			},
		},
	})
	pass.SetPipeline(d.pipeline)
	pass.SetBindGroup(0, d.bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish frame commands: %w", err)
	}
	defer commandBuffer.Release()

	d.queue.Submit(commandBuffer)
	d.surface.Present()
	return nil
}

func (d *wgpuDisplay) releaseFrameTexture() {
	if d.bindGroup != nil {
		d.bindGroup.Release()
		d.bindGroup = nil
	}
	if d.textureView != nil {
		d.textureView.Release()
		d.textureView = nil
	}
	if d.texture != nil {
		d.texture.Release()
		d.texture = nil
	}
	d.textureWidth = 0
	d.textureHeight = 0
}

func (d *wgpuDisplay) Release() {
	d.releaseFrameTexture()
	if d.pipeline != nil {
		d.pipeline.Release()
		d.pipeline = nil
	}
	if d.bindGroupLayout != nil {
		d.bindGroupLayout.Release()
		d.bindGroupLayout = nil
	}
	if d.sampler != nil {
		d.sampler.Release()
		d.sampler = nil
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
	d.configured = false
}
