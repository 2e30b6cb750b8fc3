package pipeline

// Processor is one stage of a pipeline. A stage reads what earlier stages
// left in the context and returns the context for the next one.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext {
	return f(ctx)
}

type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run passes ctx through every stage in order. A stage that sets ctx.Err
// stops the pipeline; diagnostics do not.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Err != nil {
			ctx.Logger.Printf("pipeline stopped: %v", ctx.Err)
			break
		}
	}
	return ctx
}
