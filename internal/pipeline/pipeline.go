package pipeline

import (
	"context"
)

// Run executes one pipeline run. Every step must succeed before the next
// starts; the first failure short-circuits the run and its message is
// returned verbatim. The working directory is released exactly once on every
// exit path. Run never panics and never returns an error value: failures are
// normalized into the Result.
func (p *implPipeline) Run(ctx context.Context, req Request) Result {
	if err := req.validate(); err != nil {
		return failure(err)
	}

	credential := req.Credential
	if credential == "" {
		credential = p.defaultCredential
	}

	artifacts, err := p.workspace.Acquire()
	if err != nil {
		return failure(err)
	}
	defer p.workspace.Release(ctx, artifacts)

	state := StateIdle
	p.logger.Info(ctx, "Pipeline run started: %s", req.SourceURL)

	state = p.transition(ctx, state, StateDownloading)
	if err := p.downloader.Fetch(ctx, req.SourceURL, artifacts.VideoPath); err != nil {
		p.fail(ctx, state, err)
		return failure(err)
	}

	state = p.transition(ctx, state, StateExtracting)
	if err := p.extractor.Extract(ctx, artifacts.VideoPath, artifacts.AudioPath); err != nil {
		p.fail(ctx, state, err)
		return failure(err)
	}

	state = p.transition(ctx, state, StateTranscribing)
	transcript, err := p.transcriber.Transcribe(ctx, artifacts.AudioPath, credential)
	if err != nil {
		p.fail(ctx, state, err)
		return failure(err)
	}

	state = p.transition(ctx, state, StateSummarizing)
	report, err := p.summarizer.Summarize(ctx, transcript, credential)
	if err != nil {
		p.fail(ctx, state, err)
		return failure(err)
	}

	p.transition(ctx, state, StateDone)
	p.logger.Info(ctx, "Pipeline run completed: %s", req.SourceURL)
	return success(report)
}

func (p *implPipeline) transition(ctx context.Context, from, to State) State {
	p.logger.Debug(ctx, "Pipeline state: %s -> %s", from, to)
	return to
}

func (p *implPipeline) fail(ctx context.Context, from State, err error) {
	p.logger.Error(ctx, "Pipeline state: %s -> %s: %v", from, StateFailed, err)
}
