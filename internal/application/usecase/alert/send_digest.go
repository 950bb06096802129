// Package alert contains the due-date alert scheduler and its use cases.
package alert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// SendDigestInput represents the input for sending an alert digest email.
type SendDigestInput struct {
	Today time.Time
	// To overrides the configured digest recipient when set.
	To string
}

// SendDigestOutput represents the output of sending an alert digest email.
type SendDigestOutput struct {
	AlertCount int
	ProviderID string
}

// SendDigestUseCase emails the current alert list on demand. There is no
// background timer; a digest goes out only when this use case is invoked.
type SendDigestUseCase struct {
	obligationRepo adapter.ObligationRepository
	emailSender    adapter.EmailSender
	config         SchedulerConfig
	defaultTo      string
}

// NewSendDigestUseCase creates a new SendDigestUseCase instance.
func NewSendDigestUseCase(
	obligationRepo adapter.ObligationRepository,
	emailSender adapter.EmailSender,
	config SchedulerConfig,
	defaultTo string,
) *SendDigestUseCase {
	return &SendDigestUseCase{
		obligationRepo: obligationRepo,
		emailSender:    emailSender,
		config:         config,
		defaultTo:      defaultTo,
	}
}

// Execute computes the current alerts and emails them as a digest.
func (uc *SendDigestUseCase) Execute(ctx context.Context, input SendDigestInput) (*SendDigestOutput, error) {
	to := input.To
	if to == "" {
		to = uc.defaultTo
	}
	if to == "" {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeMissingDigestRecipient,
			"no digest recipient configured",
			domainerror.ErrMissingDigestRecipient,
		)
	}

	obligations, err := uc.obligationRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	alerts := ComputeAlertsWithConfig(uc.config, input.Today, obligations)

	result, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      to,
		Subject: digestSubject(alerts),
		HTML:    renderDigestHTML(alerts),
		Text:    renderDigestText(alerts),
	})
	if err != nil {
		return nil, err
	}

	return &SendDigestOutput{
		AlertCount: len(alerts),
		ProviderID: result.ProviderID,
	}, nil
}

func digestSubject(alerts []entity.Alert) string {
	overdue := 0
	for _, a := range alerts {
		if a.Severity == entity.AlertSeverityOverdue {
			overdue++
		}
	}
	if overdue > 0 {
		return fmt.Sprintf("FinanzasApp: %d alertas (%d vencidas)", len(alerts), overdue)
	}
	return fmt.Sprintf("FinanzasApp: %d alertas de vencimiento", len(alerts))
}

func renderDigestText(alerts []entity.Alert) string {
	if len(alerts) == 0 {
		return "Estás al día: no hay vencimientos pendientes."
	}

	var b strings.Builder
	for _, a := range alerts {
		fmt.Fprintf(&b, "- %s | %s | %s | %s\n",
			a.Name, a.PeriodLabel, valueobject.FormatDate(a.Date), statusText(a))
	}
	return b.String()
}

func renderDigestHTML(alerts []entity.Alert) string {
	if len(alerts) == 0 {
		return "<p>Estás al día: no hay vencimientos pendientes.</p>"
	}

	var b strings.Builder
	b.WriteString("<table><tr><th>Obligación</th><th>Período</th><th>Fecha</th><th>Estado</th></tr>")
	for _, a := range alerts {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			a.Name, a.PeriodLabel, valueobject.FormatDate(a.Date), statusText(a))
	}
	b.WriteString("</table>")
	return b.String()
}

func statusText(a entity.Alert) string {
	switch a.Severity {
	case entity.AlertSeverityOverdue:
		return fmt.Sprintf("Vencido (%d días)", -a.DaysUntil)
	case entity.AlertSeverityDueToday:
		return "Vence HOY"
	case entity.AlertSeverityDueSoon:
		return fmt.Sprintf("Vence en %d días", a.DaysUntil)
	default:
		return fmt.Sprintf("Vence el %s", valueobject.FormatDate(a.Date))
	}
}
