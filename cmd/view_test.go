package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"camelize.dev/pkg/camelize/internal/domain"
	domainmocks "camelize.dev/pkg/camelize/internal/domain/mocks"
	m "camelize.dev/pkg/camelize/internal/model"
)

func overrideReportPath(t *testing.T, path string) {
	t.Helper()

	viper.Set(reportConfigKey, path)
	t.Cleanup(func() { viper.Set(reportConfigKey, nil) })
}

func TestViewCmd_PositionalReport(t *testing.T) {
	_, _, err := executeSubcommandWith(t, func(mw *domainmocks.MockWorkflow) {
		mw.On("View", mock.Anything, domain.ViewArgs{Report: m.Path("reports/last.yaml")}).Return(nil).Once()
	}, "view", "reports/last.yaml")

	require.NoError(t, err)
}

func TestViewCmd_UsesConfiguredReportByDefault(t *testing.T) {
	overrideReportPath(t, "saved.yaml")

	_, _, err := executeSubcommandWith(t, func(mw *domainmocks.MockWorkflow) {
		mw.On("View", mock.Anything, domain.ViewArgs{Report: m.Path("saved.yaml")}).Return(nil).Once()
	}, "view")

	require.NoError(t, err)
}

func TestViewCmd_RequiresReportPath(t *testing.T) {
	overrideReportPath(t, "")

	_, _, err := executeSubcommandWith(t, func(*domainmocks.MockWorkflow) {}, "view")

	require.ErrorIs(t, err, errNoReportPath)
}

func TestViewCmd_RejectsExtraArgs(t *testing.T) {
	_, _, err := executeSubcommandWith(t, func(*domainmocks.MockWorkflow) {}, "view", "a.yaml", "b.yaml")

	require.Error(t, err)
}
