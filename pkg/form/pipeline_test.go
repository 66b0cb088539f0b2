package form_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestPipelineProcess(t *testing.T) {
	t.Parallel()

	t.Run("empty set is trivially valid", func(t *testing.T) {
		result := form.NewPipeline().Process()

		assert.True(t, result.Valid)
		assert.Empty(t, result.InputData)
		assert.Empty(t, result.InvalidFields)
	})

	t.Run("invalid mandatory field fails the form", func(t *testing.T) {
		p := form.NewPipeline()
		p.Update(form.NewMandatory("username", "", validator.Username))
		p.Update(form.NewOptional("bio", "hello there"))

		result := p.Process()

		assert.False(t, result.Valid)
		require.Len(t, result.InvalidFields, 1)
		assert.Equal(t, "username", result.InvalidFields[0].FieldID)
		assert.Equal(t, []rules.Reason{rules.IsEmpty}, result.InvalidFields[0].Issues)
	})

	t.Run("carries all original records through", func(t *testing.T) {
		username := form.NewMandatory("username", "", validator.Username)
		bio := form.NewOptional("bio", "hello there")

		p := form.NewPipeline(form.WithFields(username, bio))
		result := p.Process()

		require.Len(t, result.InputData, 2)
		assert.Equal(t, form.InputData(username), result.InputData[0])
		assert.Equal(t, form.InputData(bio), result.InputData[1])
	})

	t.Run("valid mandatory fields pass the form", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(
			form.NewMandatory("username", "alice", validator.Username),
			form.NewMandatory("password", "Abc12345", validator.Password),
			form.NewOptional("bio", ""),
		))

		result := p.Process()

		assert.True(t, result.Valid)
		assert.Empty(t, result.InvalidFields)
		assert.Len(t, result.InputData, 3)
	})

	t.Run("optional fields are never validated", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(form.NewOptional("note", "")))

		result := p.Process()

		assert.True(t, result.Valid)
		assert.Empty(t, result.InvalidFields)
	})

	t.Run("invalid fields keep scan order", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(
			form.NewMandatory("password", "short", validator.Password),
			form.NewOptional("bio", "x"),
			form.NewMandatory("username", "a<b>", validator.Username),
		))

		result := p.Process()

		require.Len(t, result.InvalidFields, 2)
		assert.Equal(t, "password", result.InvalidFields[0].FieldID)
		assert.Equal(t, "username", result.InvalidFields[1].FieldID)
	})

	t.Run("valid always equals invalid fields emptiness", func(t *testing.T) {
		cases := []*form.Pipeline{
			form.NewPipeline(),
			form.NewPipeline(form.WithFields(form.NewOptional("a", ""))),
			form.NewPipeline(form.WithFields(form.NewMandatory("b", "", validator.Username))),
			form.NewPipeline(form.WithFields(form.NewMandatory("c", "ok", validator.Username))),
		}
		for _, p := range cases {
			result := p.Process()
			assert.Equal(t, result.Valid, len(result.InvalidFields) == 0)
		}
	})

	t.Run("repeated processing is deterministic", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(
			form.NewMandatory("username", "", validator.Username),
		))

		first := p.Process()
		second := p.Process()

		assert.Equal(t, first, second)
	})
}

func TestPipelineUpdate(t *testing.T) {
	t.Parallel()

	t.Run("appends new field IDs", func(t *testing.T) {
		p := form.NewPipeline()
		p.Update(form.NewOptional("a", "1"))
		p.Update(form.NewOptional("b", "2"))

		fields := p.Fields()
		require.Len(t, fields, 2)
		assert.Equal(t, "a", fields[0].FieldID())
		assert.Equal(t, "b", fields[1].FieldID())
	})

	t.Run("replaces in place by field ID", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(
			form.NewOptional("a", "1"),
			form.NewOptional("b", "2"),
			form.NewOptional("c", "3"),
		))

		p.Update(form.NewOptional("b", "updated"))

		fields := p.Fields()
		require.Len(t, fields, 3)
		assert.Equal(t, "b", fields[1].FieldID())
		assert.Equal(t, "updated", fields[1].Input())
	})

	t.Run("replacement may change the variant", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(form.NewOptional("username", "x")))

		p.Update(form.NewMandatory("username", "", validator.Username))

		result := p.Process()
		assert.False(t, result.Valid)
		require.Len(t, p.Fields(), 1)
	})

	t.Run("ignores nil records", func(t *testing.T) {
		p := form.NewPipeline()
		p.Update(nil)
		assert.Empty(t, p.Fields())
	})

	t.Run("update does not trigger validation", func(t *testing.T) {
		p := form.NewPipeline()
		first := p.Process()
		assert.True(t, first.Valid)

		p.Update(form.NewMandatory("username", "", validator.Username))

		// The earlier result is untouched; only a fresh Process sees the change.
		assert.True(t, first.Valid)
		assert.False(t, p.Process().Valid)
	})
}

func TestPipelineRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes by field ID", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(
			form.NewOptional("a", "1"),
			form.NewOptional("b", "2"),
		))

		p.Remove("a")

		fields := p.Fields()
		require.Len(t, fields, 1)
		assert.Equal(t, "b", fields[0].FieldID())
	})

	t.Run("unknown field ID is a no-op", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(form.NewOptional("a", "1")))
		p.Remove("missing")
		assert.Len(t, p.Fields(), 1)
	})

	t.Run("removing an invalid field can turn the form valid", func(t *testing.T) {
		p := form.NewPipeline(form.WithFields(
			form.NewMandatory("username", "", validator.Username),
			form.NewOptional("bio", "x"),
		))
		require.False(t, p.Process().Valid)

		p.Remove("username")

		assert.True(t, p.Process().Valid)
	})
}

func TestPipelineReset(t *testing.T) {
	t.Parallel()

	p := form.NewPipeline(form.WithFields(
		form.NewOptional("a", "1"),
		form.NewMandatory("username", "", validator.Username),
	))

	p.Reset()

	assert.Empty(t, p.Fields())
	assert.True(t, p.Process().Valid)
}

func TestPipelineLogger(t *testing.T) {
	t.Parallel()

	t.Run("accepts a custom logger", func(t *testing.T) {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		p := form.NewPipeline(form.WithLogger(log))
		assert.True(t, p.Process().Valid)
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		p := form.NewPipeline(form.WithLogger(nil))
		assert.True(t, p.Process().Valid)
	})
}

func TestMandatory(t *testing.T) {
	t.Parallel()

	t.Run("captures issues at construction", func(t *testing.T) {
		m := form.NewMandatory("password", "abc12345", validator.Password)

		assert.Equal(t, "password", m.FieldID())
		assert.Equal(t, "abc12345", m.Input())
		assert.False(t, m.IsValid())
		assert.Equal(t, []rules.Reason{rules.MissingUppercase}, m.Issues())
	})

	t.Run("valid input yields no issues", func(t *testing.T) {
		m := form.NewMandatory("password", "Abc12345", validator.Password)
		assert.True(t, m.IsValid())
		assert.Empty(t, m.Issues())
	})

	t.Run("issues are a defensive copy", func(t *testing.T) {
		m := form.NewMandatory("username", "", validator.Username)

		issues := m.Issues()
		issues[0] = rules.TooLong

		assert.Equal(t, []rules.Reason{rules.IsEmpty}, m.Issues())
	})
}

func TestOptional(t *testing.T) {
	t.Parallel()

	o := form.NewOptional("bio", "hello")
	assert.Equal(t, "bio", o.FieldID())
	assert.Equal(t, "hello", o.Input())
}
