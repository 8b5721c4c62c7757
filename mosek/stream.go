package mosek

import (
	"strings"

	"github.com/apex/log"
)

// SetStreamHandler routes one of the task's output streams to fn. Each
// call receives a chunk of text as MOSEK emits it, which may hold several
// lines or a partial one. A nil fn detaches the stream. Replacing or
// detaching a SetLogger handler emits its unterminated last line.
func (t *Task) SetStreamHandler(stream StreamType, fn func(string)) error {
	if err := t.live("SetStreamHandler"); err != nil {
		return err
	}
	if h, ok := t.streams[stream]; ok {
		if err := t.check("SetStreamHandler", nativeUnlinkStream(t.ptr, stream)); err != nil {
			return err
		}
		deleteStreamHandle(h)
		delete(t.streams, stream)
	}
	t.flushSplitter(stream)
	if fn == nil {
		return nil
	}

	h := newStreamHandle(fn)
	if err := t.check("SetStreamHandler", nativeLinkStream(t.ptr, stream, h)); err != nil {
		deleteStreamHandle(h)
		return err
	}
	if t.streams == nil {
		t.streams = make(map[StreamType]uintptr)
	}
	t.streams[stream] = h
	return nil
}

// SetLogger forwards the solver output to logger, one entry per line.
// The log and message streams are logged at debug level, warnings at warn
// and errors at error level. A nil logger detaches all streams.
func (t *Task) SetLogger(logger log.Interface) error {
	for _, s := range []StreamType{StreamLog, StreamMsg, StreamWrn, StreamErr} {
		if logger == nil {
			if err := t.SetStreamHandler(s, nil); err != nil {
				return err
			}
			continue
		}
		ls := newLineSplitter(logEntry(logger, s))
		if err := t.SetStreamHandler(s, ls.write); err != nil {
			return err
		}
		if t.splitters == nil {
			t.splitters = make(map[StreamType]*lineSplitter)
		}
		t.splitters[s] = ls
	}
	return nil
}

func (t *Task) flushSplitter(s StreamType) {
	if ls, ok := t.splitters[s]; ok {
		ls.flush()
		delete(t.splitters, s)
	}
}

func logEntry(logger log.Interface, s StreamType) func(string) {
	entry := logger.WithField("stream", strings.ToLower(strings.TrimPrefix(s.String(), "MSK_STREAM_")))
	switch s {
	case StreamWrn:
		return entry.Warn
	case StreamErr:
		return entry.Error
	default:
		return entry.Debug
	}
}

// lineSplitter reassembles stream chunks into whole lines.
type lineSplitter struct {
	emit    func(string)
	pending strings.Builder
}

func newLineSplitter(emit func(string)) *lineSplitter {
	return &lineSplitter{emit: emit}
}

func (l *lineSplitter) write(chunk string) {
	for {
		i := strings.IndexByte(chunk, '\n')
		if i < 0 {
			l.pending.WriteString(chunk)
			return
		}
		l.pending.WriteString(chunk[:i])
		l.flush()
		chunk = chunk[i+1:]
	}
}

// flush emits the pending partial line, if any.
func (l *lineSplitter) flush() {
	line := strings.TrimRight(l.pending.String(), "\r")
	l.pending.Reset()
	if strings.TrimSpace(line) != "" {
		l.emit(line)
	}
}
