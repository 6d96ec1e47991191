package cmd

import (
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/spf13/cobra"
)

var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Show the admin user",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		defer Release()
		admin, err := op.GetUserByName("admin")
		if err != nil {
			utils.Log.Errorf("failed get admin user: %+v", err)
			return
		}
		utils.Log.Infof("admin user id: %d, username: %s", admin.ID, admin.Username)
	},
}

var SetPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Reset the admin password",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		defer Release()
		admin, err := op.GetUserByName("admin")
		if err != nil {
			utils.Log.Errorf("failed get admin user: %+v", err)
			return
		}
		if err := op.ChangePassword(admin, args[0], ""); err != nil {
			utils.Log.Errorf("failed set admin password: %+v", err)
			return
		}
		utils.Log.Infof("admin password updated")
	},
}

func init() {
	RootCmd.AddCommand(AdminCmd)
	AdminCmd.AddCommand(SetPasswordCmd)
}
