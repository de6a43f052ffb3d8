package service

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	tplDepositApproved    = "deposit_approved"
	tplDepositRejected    = "deposit_rejected"
	tplWithdrawalReceived = "withdrawal_received"
	tplWithdrawalApproved = "withdrawal_approved"
	tplWithdrawalRejected = "withdrawal_rejected"
	tplKYCApproved        = "kyc_approved"
	tplKYCRejected        = "kyc_rejected"

	notifyDateLayout = "2006-01-02 15:04"
)

var notificationSubjects = map[string]string{
	tplDepositApproved:    "Deposit Approved",
	tplDepositRejected:    "Deposit Rejected",
	tplWithdrawalReceived: "Withdrawal Request Received",
	tplWithdrawalApproved: "Withdrawal Approved",
	tplWithdrawalRejected: "Withdrawal Rejected",
	tplKYCApproved:        "KYC Approved",
	tplKYCRejected:        "KYC Rejected",
}

var notificationTemplates = template.Must(template.New("notifications").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(domain.CashPlaces) },
	"date":  func(t time.Time) string { return t.Format(notifyDateLayout) },
}).Parse(`
{{define "deposit_approved"}}<p>Hi {{.Username}},</p>
<p>Your bank deposit (Ref: {{.Reference}}) of Rs. {{money .Amount}} has been <b>approved</b> and credited to your wallet.</p>
<p>Submitted on: {{date .Date}}</p>{{end}}

{{define "deposit_rejected"}}<p>Hi {{.Username}},</p>
<p>Your bank deposit (Ref: {{.Reference}}) has been <b>rejected</b>.</p>
<p>Amount: Rs. {{money .Amount}}</p>
<p>If you believe this is an error, please contact support.</p>{{end}}

{{define "withdrawal_received"}}<p>Hi {{.Username}},</p>
<p>Your withdrawal request has been submitted and is now <b>pending review</b>.</p>
<p><b>Amount:</b> Rs. {{money .Amount}}</p>
<p><b>Bank details:</b> {{.Reference}}</p>
<p>We will notify you once it is processed.</p>{{end}}

{{define "withdrawal_approved"}}<p>Hi {{.Username}},</p>
<p>Your withdrawal of Rs. {{money .Amount}} has been <b>approved</b>.</p>
<p><b>Requested on:</b> {{date .Date}}<br><b>Bank details:</b> {{.Reference}}</p>{{end}}

{{define "withdrawal_rejected"}}<p>Hi {{.Username}},</p>
<p>Your withdrawal request has been <b>rejected</b>.</p>
<p><b>Amount:</b> Rs. {{money .Amount}}<br><b>Requested on:</b> {{date .Date}}<br><b>Bank details:</b> {{.Reference}}</p>
<p>If you believe this is an error, please reply to this email.</p>{{end}}

{{define "kyc_approved"}}<p>Hi {{.Username}},</p>
<p>Your KYC verification has been <b>approved</b>. Thank you for verifying your identity.</p>{{end}}

{{define "kyc_rejected"}}<p>Hi {{.Username}},</p>
<p>Your KYC verification has been <b>rejected</b>. Please resubmit your details correctly.</p>{{end}}
`))

type notificationData struct {
	Username  string
	Amount    decimal.Decimal
	Reference string
	Date      time.Time
}

// buildNotification рендерит уведомление пользователю. Для пользователей без email возвращает false.
func buildNotification(user *domain.User, name string, data notificationData) (domain.Notification, bool) {
	if user == nil || user.Email == "" {
		return domain.Notification{}, false
	}
	data.Username = user.Username

	var buf bytes.Buffer
	if err := notificationTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return domain.Notification{}, false
	}
	return domain.Notification{
		To:      user.Email,
		Subject: notificationSubjects[name],
		HTML:    buf.String(),
	}, true
}

// recipientNotifier отправляет уведомление после коммита. Получатель читается вне транзакции,
// ошибка чтения означает, что уведомления не будет. Результат операции от нее не зависит.
type recipientNotifier struct {
	users    UserRepository
	notifier Notifier
}

func newRecipientNotifier(u uow.UOW, notifier Notifier) (recipientNotifier, error) {
	users, err := repoFrom[UserRepository](u, repoargs.UserRepoName)
	if err != nil {
		return recipientNotifier{}, err
	}
	return recipientNotifier{users: users, notifier: notifier}, nil
}

func (r recipientNotifier) send(ctx context.Context, userID int64, name string, data notificationData) {
	if r.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return
	}
	if n, ok := buildNotification(user, name, data); ok {
		r.notifier.Notify(ctx, n)
	}
}
